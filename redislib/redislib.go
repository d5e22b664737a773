// Package redislib provides basic bytes set/get/exists functions over a redis pool
package redislib

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"
)

// ErrNotFound is returned by Get when the key holds no value
var ErrNotFound = errors.New("redis: key not found")

/***************************************************************************************************************
****************************************************************************************************************
* Redis functions ************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// Client keeps a redis.Pool, the way redigo establishes connectivity
type Client struct {
	pool *redis.Pool
}

// New creates a Client for the server at addr (host:port). No connection is
// made until the first command.
func New(addr string) *Client {
	return &Client{pool: &redis.Pool{
		// Max number of idle connections in the pool
		MaxIdle:     8,
		IdleTimeout: 4 * time.Minute,
		// Dial is an application supplied function for creating and configuring a connection
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr, redis.DialConnectTimeout(5*time.Second))
		},
	}}
}

// Close releases the pool
func (c *Client) Close() error {
	return c.pool.Close()
}

// Ping tests connectivity for redis (PONG should be returned)
func (c *Client) Ping() error {
	conn := c.pool.Get()
	defer conn.Close()
	_, err := redis.String(conn.Do("PING"))
	return err
}

// Set executes the redis SET command
func (c *Client) Set(key string, value []byte) error {
	conn := c.pool.Get()
	defer conn.Close()
	_, err := conn.Do("SET", key, value)
	return err
}

// Get executes the redis GET command
func (c *Client) Get(key string) ([]byte, error) {
	conn := c.pool.Get()
	defer conn.Close()
	b, err := redis.Bytes(conn.Do("GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	}
	return b, err
}

// Exists checks if a pair key/value has been previously stored on Redis
func (c *Client) Exists(key string) (bool, error) {
	conn := c.pool.Get()
	defer conn.Close()
	return redis.Bool(conn.Do("EXISTS", key))
}
