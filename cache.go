package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/singleflight"
)

// cacheKey names a cache entry on disk.
type cacheKey interface {
	comparable
	CacheKey() string
}

// FileCache keeps fetched values as files in one directory. Entries are
// written once and never expire; evict removes one.
type FileCache[K cacheKey] struct {
	dir   string
	fetch func(context.Context, K) (io.ReadCloser, error)
	group singleflight.Group
}

// NewFileCache creates dir if needed.
func NewFileCache[K cacheKey](dir string, fetch func(context.Context, K) (io.ReadCloser, error)) (*FileCache[K], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &FileCache[K]{dir: dir, fetch: fetch}, nil
}

func (c *FileCache[K]) path(key K) string {
	return filepath.Join(c.dir, key.CacheKey())
}

// Get returns the cached value for key, fetching and storing it on a miss.
// Concurrent misses for one key share a single fetch.
func (c *FileCache[K]) Get(ctx context.Context, key K) (string, error) {
	if b, err := os.ReadFile(c.path(key)); err == nil {
		return string(b), nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("read cache entry %s: %w", key.CacheKey(), err)
	}

	v, err, _ := c.group.Do(key.CacheKey(), func() (any, error) {
		// Another caller may have filled the entry while this one waited.
		if b, err := os.ReadFile(c.path(key)); err == nil {
			return string(b), nil
		}
		return c.fill(ctx, key)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// fill fetches key into a temp file and renames it into place, so a failed
// fetch never leaves a partial entry behind.
func (c *FileCache[K]) fill(ctx context.Context, key K) (string, error) {
	body, err := c.fetch(ctx, key)
	if err != nil {
		return "", err
	}
	defer func() { _ = body.Close() }()

	tmp, err := os.CreateTemp(c.dir, "."+key.CacheKey()+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp cache entry: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("download %s: %w", key.CacheKey(), err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write cache entry %s: %w", key.CacheKey(), err)
	}
	if err := os.Rename(tmpName, c.path(key)); err != nil {
		return "", fmt.Errorf("store cache entry %s: %w", key.CacheKey(), err)
	}
	b, err := os.ReadFile(c.path(key))
	if err != nil {
		return "", fmt.Errorf("read cache entry %s: %w", key.CacheKey(), err)
	}
	return string(b), nil
}

// Evict removes the entry for key. A missing entry is not an error.
func (c *FileCache[K]) Evict(key K) error {
	if err := os.Remove(c.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("evict %s: %w", key.CacheKey(), err)
	}
	return nil
}

// defaultCacheDir is <user cache dir>/aoc, or ./aoc-cache when the user cache
// dir is unknown.
func defaultCacheDir(log *logger) string {
	dir, err := os.UserCacheDir()
	if err != nil {
		log.warnf("no user cache dir (%v), using ./aoc-cache", err)
		return "aoc-cache"
	}
	return filepath.Join(dir, appDirName)
}
