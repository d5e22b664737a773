// Package redditlib scrapes comment text from Reddit's public JSON listings
package redditlib

import (
	"bytes"
	"context"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"goWordFreq/iolib"
	"goWordFreq/logx"
)

// Options configure a Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// CacheFile persists fetched listings between runs; empty disables it
	CacheFile string
	ProxyHost string
	ProxyUser string
	ProxyPass string
	Logger    *zap.Logger
}

// Client fetches listings, answering repeated requests from its cache
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	cache     *cache.Cache
	cacheFile string
	log       *zap.Logger
}

// New creates a Client, loading the persisted cache when there is one
func New(opts Options) (*Client, error) {
	c := &Client{
		baseURL:   strings.TrimSuffix(opts.BaseURL, "/"),
		userAgent: opts.UserAgent,
		http:      newHTTPClient(opts),
		cacheFile: opts.CacheFile,
		log:       logx.OrNop(opts.Logger),
	}
	if err := c.loadCache(); err != nil {
		return nil, err
	}
	return c, nil
}

func newHTTPClient(opts Options) *http.Client {
	if opts.ProxyHost == "" {
		return &http.Client{Timeout: opts.Timeout}
	}
	return &http.Client{
		Timeout: opts.Timeout,
		Transport: &http.Transport{Proxy: http.ProxyURL(&url.URL{
			Scheme: "http",
			User:   url.UserPassword(opts.ProxyUser, opts.ProxyPass),
			Host:   opts.ProxyHost,
		})},
	}
}

func (c *Client) loadCache() error {
	if c.cacheFile == "" {
		c.cache = cache.New(cache.NoExpiration, 10*time.Minute)
		return nil
	}
	b, err := os.ReadFile(c.cacheFile)
	if os.IsNotExist(err) {
		c.cache = cache.New(cache.NoExpiration, 10*time.Minute)
		return nil
	}
	if err != nil {
		return err
	}
	items := make(map[string]cache.Item)
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&items); err != nil {
		c.log.Warn("discarding unreadable response cache", zap.String("file", c.cacheFile), zap.Error(err))
		items = make(map[string]cache.Item)
	}
	c.cache = cache.NewFrom(cache.NoExpiration, 10*time.Minute, items)
	return nil
}

// SaveCache stores the response cache into its persistent file, keeping the
// previous one as a backup
func (c *Client) SaveCache() error {
	if c.cacheFile == "" {
		return nil
	}
	if iolib.FileExists(c.cacheFile) {
		if err := iolib.CopyFileContents(c.cacheFile, c.cacheFile+".backup"); err != nil {
			return fmt.Errorf("backing up %s: %w", c.cacheFile, err)
		}
	}
	var b bytes.Buffer
	if err := gob.NewEncoder(&b).Encode(c.cache.Items()); err != nil {
		return fmt.Errorf("encoding response cache: %w", err)
	}
	return iolib.Bytes2file(b.Bytes(), c.cacheFile)
}

// getJSON decodes the JSON document at path (with query) into v
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, v any) error {
	link := c.baseURL + path
	if len(query) > 0 {
		link += "?" + query.Encode()
	}
	body, err := c.download(ctx, link)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decoding %s: %w", link, err)
	}
	return nil
}

func (c *Client) download(ctx context.Context, link string) ([]byte, error) {
	if b, found := c.cache.Get(link); found {
		c.log.Debug("cache hit", zap.String("url", link))
		return b.([]byte), nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", link, resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", link, err)
	}
	c.log.Debug("downloaded", zap.String("url", link), zap.Int("bytes", len(b)))
	c.cache.Set(link, b, cache.NoExpiration)
	return b, nil
}
