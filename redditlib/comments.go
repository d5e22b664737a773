package redditlib

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"iter"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"jaytaylor.com/html2text"
)

const (
	kindComment = "t1"
	kindPost    = "t3"
	kindMore    = "more"

	pageSize     = 100
	moreChunk    = 100
	commentLimit = 500
)

// Sort selects which submissions of a subreddit are listed
type Sort string

const (
	SortHot      Sort = "hot"
	SortTopAll   Sort = "top_all"
	SortTopYear  Sort = "top_year"
	SortTopMonth Sort = "top_month"
	SortTopWeek  Sort = "top_week"
	SortTopDay   Sort = "top_day"
	SortTopHour  Sort = "top_hour"
)

// ParseSort validates a sort name
func ParseSort(s string) (Sort, error) {
	switch sort := Sort(s); sort {
	case SortHot, SortTopAll, SortTopYear, SortTopMonth, SortTopWeek, SortTopDay, SortTopHour:
		return sort, nil
	}
	return "", fmt.Errorf("sort must be one of {hot, top_all, top_year, top_month, top_week, top_day, top_hour}, got %q", s)
}

// endpoint returns the listing name and its time window, if any
func (s Sort) endpoint() (string, string) {
	if s == SortHot {
		return "hot", ""
	}
	return "top", strings.TrimPrefix(string(s), "top_")
}

// Comment is one comment as returned by a listing
type Comment struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Body     string `json:"body"`
	BodyHTML string `json:"body_html"`
}

// PlainText renders the comment's HTML body as plain text, falling back to
// the markdown body when there is no HTML.
func (c Comment) PlainText() (string, error) {
	if c.BodyHTML == "" {
		return c.Body, nil
	}
	return html2text.FromString(html.UnescapeString(c.BodyHTML), html2text.Options{PrettyTables: false})
}

// Post is one submission of a subreddit listing
type Post struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subreddit   string `json:"subreddit"`
	NumComments int    `json:"num_comments"`
}

type thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type listing struct {
	Data struct {
		After    string  `json:"after"`
		Children []thing `json:"children"`
	} `json:"data"`
}

// replies is either an empty string or a nested listing
type replies []thing

func (r *replies) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		*r = nil
		return nil
	}
	var l listing
	if err := json.Unmarshal(b, &l); err != nil {
		return err
	}
	*r = l.Data.Children
	return nil
}

type commentData struct {
	Comment
	Replies replies `json:"replies"`
}

type moreData struct {
	Count    int      `json:"count"`
	Children []string `json:"children"`
}

type moreResponse struct {
	JSON struct {
		Errors [][]any `json:"errors"`
		Data   struct {
			Things []thing `json:"things"`
		} `json:"data"`
	} `json:"json"`
}

// paginate pages through path until n children of kind were seen or the
// listing ends
func (c *Client) paginate(ctx context.Context, path string, query url.Values, kind string, n int) iter.Seq2[json.RawMessage, error] {
	return func(yield func(json.RawMessage, error) bool) {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		seen := 0
		after := ""
		for seen < n {
			q.Set("limit", strconv.Itoa(min(pageSize, n-seen)))
			if after != "" {
				q.Set("after", after)
			}
			var page listing
			if err := c.getJSON(ctx, path, q, &page); err != nil {
				yield(nil, err)
				return
			}
			for _, t := range page.Data.Children {
				if t.Kind != kind {
					continue
				}
				if !yield(t.Data, nil) {
					return
				}
				if seen++; seen == n {
					return
				}
			}
			after = page.Data.After
			if after == "" || len(page.Data.Children) == 0 {
				return
			}
		}
	}
}

// UserComments yields up to n of the newest comments of a user
func (c *Client) UserComments(ctx context.Context, user string, n int) iter.Seq2[Comment, error] {
	return func(yield func(Comment, error) bool) {
		path := "/user/" + url.PathEscape(user) + "/comments.json"
		for raw, err := range c.paginate(ctx, path, nil, kindComment, n) {
			var cm Comment
			if err == nil {
				err = json.Unmarshal(raw, &cm)
			}
			if err != nil {
				yield(Comment{}, err)
				return
			}
			if !yield(cm, nil) {
				return
			}
		}
	}
}

// SubredditPosts lists the first n submissions of a subreddit
func (c *Client) SubredditPosts(ctx context.Context, sub string, sort Sort, n int) ([]Post, error) {
	name, window := sort.endpoint()
	query := url.Values{}
	if window != "" {
		query.Set("t", window)
	}
	path := "/r/" + url.PathEscape(sub) + "/" + name + ".json"
	var posts []Post
	for raw, err := range c.paginate(ctx, path, query, kindPost, n) {
		if err != nil {
			return nil, err
		}
		var p Post
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decoding post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}

// PostComments yields every comment of a submission, breadth first, fetching
// collapsed "load more" branches as they are reached.
func (c *Client) PostComments(ctx context.Context, post Post) iter.Seq2[Comment, error] {
	return func(yield func(Comment, error) bool) {
		var pages []listing
		query := url.Values{"limit": {strconv.Itoa(commentLimit)}}
		if err := c.getJSON(ctx, "/comments/"+url.PathEscape(post.ID)+".json", query, &pages); err != nil {
			yield(Comment{}, err)
			return
		}
		if len(pages) < 2 {
			yield(Comment{}, fmt.Errorf("post %s: expected submission and comment listings, got %d", post.ID, len(pages)))
			return
		}

		queue := pages[1].Data.Children
		for len(queue) > 0 {
			t := queue[0]
			queue = queue[1:]
			switch t.Kind {
			case kindComment:
				var cd commentData
				if err := json.Unmarshal(t.Data, &cd); err != nil {
					yield(Comment{}, fmt.Errorf("decoding comment: %w", err))
					return
				}
				if !yield(cd.Comment, nil) {
					return
				}
				queue = append(queue, cd.Replies...)
			case kindMore:
				var m moreData
				if err := json.Unmarshal(t.Data, &m); err != nil {
					yield(Comment{}, fmt.Errorf("decoding more: %w", err))
					return
				}
				things, err := c.moreChildren(ctx, post.ID, m.Children)
				if err != nil {
					yield(Comment{}, err)
					return
				}
				queue = append(queue, things...)
			}
		}
	}
}

// moreChildren expands the ids of a collapsed branch into comment things
func (c *Client) moreChildren(ctx context.Context, postID string, ids []string) ([]thing, error) {
	var things []thing
	for len(ids) > 0 {
		chunk := ids[:min(moreChunk, len(ids))]
		ids = ids[len(chunk):]
		query := url.Values{
			"api_type": {"json"},
			"link_id":  {kindPost + "_" + postID},
			"children": {strings.Join(chunk, ",")},
		}
		var resp moreResponse
		if err := c.getJSON(ctx, "/api/morechildren.json", query, &resp); err != nil {
			return nil, err
		}
		if len(resp.JSON.Errors) > 0 {
			return nil, fmt.Errorf("expanding comments of post %s: %v", postID, resp.JSON.Errors)
		}
		c.log.Debug("expanded comments", zap.String("post", postID), zap.Int("requested", len(chunk)), zap.Int("received", len(resp.JSON.Data.Things)))
		things = append(things, resp.JSON.Data.Things...)
	}
	return things, nil
}

// SubredditComments yields every comment of the first nPosts submissions of
// a subreddit. progress, when not nil, receives the completed fraction.
func (c *Client) SubredditComments(ctx context.Context, sub string, sort Sort, nPosts int, progress func(float64)) iter.Seq2[Comment, error] {
	return func(yield func(Comment, error) bool) {
		posts, err := c.SubredditPosts(ctx, sub, sort, nPosts)
		if err != nil {
			yield(Comment{}, err)
			return
		}
		c.log.Info("listed submissions", zap.String("subreddit", sub), zap.String("sort", string(sort)), zap.Int("posts", len(posts)))
		for px, p := range posts {
			cx := 0
			for cm, err := range c.PostComments(ctx, p) {
				if !yield(cm, err) || err != nil {
					return
				}
				cx++
				if progress != nil {
					progress((float64(cx)/float64(max(p.NumComments, cx)) + float64(px)) / float64(len(posts)))
				}
			}
		}
		if progress != nil {
			progress(1)
		}
	}
}
