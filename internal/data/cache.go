package data

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"financial-health/internal/model"
)

// CacheEntry is a parsed document and its expiry.
type CacheEntry struct {
	Document  model.Document
	ExpiresAt time.Time
}

// DocumentCache keeps parsed documents keyed by content hash so that
// re-uploading the same file skips parsing. A nil *DocumentCache is valid
// and caches nothing.
type DocumentCache struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewDocumentCache returns a cache with the given TTL, or nil when ttl <= 0.
func NewDocumentCache(ttl time.Duration) *DocumentCache {
	if ttl <= 0 {
		return nil
	}
	return &DocumentCache{
		store: make(map[string]*CacheEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get retrieves a cached document if available and not expired
func (c *DocumentCache) Get(key string) (model.Document, bool) {
	if c == nil {
		return model.Document{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[key]
	if !exists || c.now().After(entry.ExpiresAt) {
		return model.Document{}, false
	}
	return entry.Document, true
}

// Set stores a document in the cache
func (c *DocumentCache) Set(key string, doc model.Document) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = &CacheEntry{
		Document:  doc,
		ExpiresAt: c.now().Add(c.ttl),
	}
}

// Len returns the number of entries, expired ones included.
func (c *DocumentCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Prune removes expired entries.
func (c *DocumentCache) Prune() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, entry := range c.store {
		if now.After(entry.ExpiresAt) {
			delete(c.store, key)
		}
	}
}

// Run prunes expired entries every interval until stop is closed.
func (c *DocumentCache) Run(interval time.Duration, stop <-chan struct{}) {
	if c == nil {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Prune()
		case <-stop:
			return
		}
	}
}

// CacheKey hashes the format and raw bytes of an upload.
func CacheKey(format string, content []byte) string {
	h := sha256.New()
	h.Write([]byte(format))
	h.Write([]byte{0})
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}
