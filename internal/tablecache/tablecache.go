// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Package tablecache keeps recently parsed code tables, keyed by the hash of
// the table file contents, so that decoding many bit files against a few
// tables parses each table once.
package tablecache

import (
	"bytes"
	"os"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jba/prefixcode"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("prefixcode/tablecache")

// DefaultSize is the number of tables a cache holds when New is given 0.
const DefaultSize = 64

// A Cache is safe for concurrent use.
// Tables returned from a Cache are shared and must not be modified.
type Cache struct {
	tables       *lru.Cache[uint64, prefixcode.ReverseCodeTable]
	hits, misses atomic.Int64
}

// New returns a cache holding at most size tables.
func New(size int) (*Cache, error) {
	if size == 0 {
		size = DefaultSize
	}
	tables, err := lru.New[uint64, prefixcode.ReverseCodeTable](size)
	if err != nil {
		return nil, err
	}
	return &Cache{tables: tables}, nil
}

// Load returns the table held in data, a table file's contents.
// Tables that fail to parse are not cached.
func (c *Cache) Load(data []byte) (prefixcode.ReverseCodeTable, error) {
	key := xxhash.Sum64(data)
	if rt, ok := c.tables.Get(key); ok {
		c.hits.Add(1)
		return rt, nil
	}
	c.misses.Add(1)
	rt, err := prefixcode.ReadTable(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if c.tables.Add(key, rt) {
		log.Debugf("evicted a table to make room for %016x", key)
	}
	return rt, nil
}

// LoadFile reads the named table file and returns its table.
func (c *Cache) LoadFile(name string) (prefixcode.ReverseCodeTable, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return c.Load(data)
}

// Len returns the number of tables in the cache.
func (c *Cache) Len() int { return c.tables.Len() }

// Stats returns the number of loads served from the cache and the number parsed.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
