package mcpserver

import (
	"container/list"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/v19i/openapi-enum-arrays/extractor"
)

// typesInput represents the two ways a generated types file can be provided
// to a tool. Exactly one of File or Content must be set.
type typesInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a generated types.gen.ts file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline TypeScript type declarations"`
}

// loadedTypes is the text of a types file together with its extracted records.
type loadedTypes struct {
	text    string
	path    string
	records []extractor.Record
}

// cachedTypes is one cache slot. Slots live in typesCacheStore.order,
// most recently used at the front.
type cachedTypes struct {
	key     string
	loaded  *loadedTypes
	expires time.Time
}

// typesCacheStore keeps extracted type files for the lifetime of the server.
// File inputs are keyed by absolute path and modification time, inline
// content by its SHA-256 hash.
type typesCacheStore struct {
	mu       sync.Mutex
	byKey    map[string]*list.Element
	order    *list.List
	capacity int
	sweeping atomic.Bool
}

var typesCache = newTypesCache(cfg.CacheMaxSize)

func newTypesCache(capacity int) *typesCacheStore {
	return &typesCacheStore{
		byKey:    make(map[string]*list.Element),
		order:    list.New(),
		capacity: capacity,
	}
}

func (c *typesCacheStore) get(key string) *loadedTypes {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.byKey[key]
	if !ok {
		return nil
	}
	slot := el.Value.(*cachedTypes)
	if time.Now().After(slot.expires) {
		c.remove(el)
		return nil
	}
	c.order.MoveToFront(el)
	return slot.loaded
}

func (c *typesCacheStore) put(key string, loaded *loadedTypes, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	slot := &cachedTypes{key: key, loaded: loaded, expires: time.Now().Add(ttl)}
	if el, ok := c.byKey[key]; ok {
		el.Value = slot
		c.order.MoveToFront(el)
		return
	}
	for c.order.Len() >= c.capacity && c.order.Len() > 0 {
		c.remove(c.order.Back())
	}
	c.byKey[key] = c.order.PushFront(slot)
}

// remove drops el. The caller holds c.mu.
func (c *typesCacheStore) remove(el *list.Element) {
	delete(c.byKey, el.Value.(*cachedTypes).key)
	c.order.Remove(el)
}

// sweep drops every expired slot.
func (c *typesCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		if now.After(el.Value.(*cachedTypes).expires) {
			c.remove(el)
		}
		el = next
	}
}

// startSweeper sweeps the cache every interval until ctx is done.
// At most one sweeper runs at a time.
func (c *typesCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || !c.sweeping.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeping.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

func (c *typesCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.byKey)
	c.order.Init()
}

func (c *typesCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// makeCacheKey returns the cache key of the input, or "" when it cannot be cached.
func makeCacheKey(in typesInput) string {
	switch {
	case in.File != "":
		absPath, err := filepath.Abs(in.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case in.Content != "":
		h := sha256.Sum256([]byte(in.Content))
		return "content:" + hex.EncodeToString(h[:])
	default:
		return ""
	}
}

// load reads the input and extracts its records, using the cache when enabled.
func (in typesInput) load() (*loadedTypes, error) {
	if (in.File == "") == (in.Content == "") {
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
	if in.Content != "" && int64(len(in.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set ENUMARRAYS_MAX_INLINE_SIZE to increase",
			len(in.Content), cfg.MaxInlineSize)
	}

	var key string
	ttl := cfg.CacheContentTTL
	if cfg.CacheEnabled {
		key = makeCacheKey(in)
		if in.File != "" {
			ttl = cfg.CacheFileTTL
		}
	}
	if key != "" {
		if cached := typesCache.get(key); cached != nil {
			return cached, nil
		}
	}

	loaded := &loadedTypes{text: in.Content}
	if in.File != "" {
		data, err := os.ReadFile(in.File)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", in.File, err)
		}
		loaded.text = string(data)
		loaded.path = in.File
	}
	loaded.records = extractor.Extract(loaded.text)

	if key != "" {
		typesCache.put(key, loaded, ttl)
	}
	return loaded, nil
}
