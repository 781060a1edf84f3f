// Package dirsize calculates aggregate directory sizes with a TTL memo so
// repeated scans of the same cache paths don't re-walk the tree.
package dirsize

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/cachesweep/cachesweep/internal/logger"
)

// DefaultTTL is how long a computed size stays valid when the config does
// not override it.
const DefaultTTL = 5 * time.Minute

// memoEntries bounds the memo table; one entry per distinct cache path.
const memoEntries = 1024

// Result holds the aggregate numbers for one directory tree.
type Result struct {
	Size   int64
	Files  int
	Newest time.Time
	Oldest time.Time
}

// Calculator computes directory sizes and memoizes them per path.
type Calculator struct {
	memo *expirable.LRU[string, Result]
}

// NewCalculator creates a calculator whose memoized results expire after ttl.
// A non-positive ttl falls back to DefaultTTL.
func NewCalculator(ttl time.Duration) *Calculator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Calculator{
		memo: expirable.NewLRU[string, Result](memoEntries, nil, ttl),
	}
}

// Dir returns the aggregate size of the tree rooted at path. A missing path
// yields a zero result; stat failures on individual entries are skipped and
// never fail the walk. The only hard error is context cancellation.
func (c *Calculator) Dir(ctx context.Context, path string) (Result, error) {
	path = filepath.Clean(path)

	if cached, ok := c.memo.Get(path); ok {
		return cached, nil
	}

	var res Result
	info, err := os.Stat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Debug("Failed to stat path", logger.Fields{"path": path, "error": err.Error()})
		}
		return Result{}, nil
	}

	if !info.IsDir() {
		res = Result{Size: info.Size(), Files: 1, Newest: info.ModTime(), Oldest: info.ModTime()}
		c.memo.Add(path, res)
		return res, nil
	}

	walkErr := filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			// Unreadable entries count as zero.
			return nil
		}
		if d.IsDir() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return nil
		}
		res.Size += fi.Size()
		res.Files++
		mt := fi.ModTime()
		if res.Newest.IsZero() || mt.After(res.Newest) {
			res.Newest = mt
		}
		if res.Oldest.IsZero() || mt.Before(res.Oldest) {
			res.Oldest = mt
		}
		return nil
	})
	if walkErr != nil {
		return Result{}, walkErr
	}

	c.memo.Add(path, res)
	return res, nil
}

// Sum aggregates Dir over multiple paths.
func (c *Calculator) Sum(ctx context.Context, paths []string) (Result, error) {
	var total Result
	for _, p := range paths {
		res, err := c.Dir(ctx, p)
		if err != nil {
			return Result{}, err
		}
		total.Size += res.Size
		total.Files += res.Files
		if total.Newest.IsZero() || res.Newest.After(total.Newest) {
			total.Newest = res.Newest
		}
		if !res.Oldest.IsZero() && (total.Oldest.IsZero() || res.Oldest.Before(total.Oldest)) {
			total.Oldest = res.Oldest
		}
	}
	return total, nil
}

// Invalidate drops the memoized result for path and all memoized paths
// below it. Call after deleting a tree.
func (c *Calculator) Invalidate(path string) {
	path = filepath.Clean(path)
	for _, key := range c.memo.Keys() {
		if key == path || isBelow(path, key) {
			c.memo.Remove(key)
		}
	}
}

// AgeDays returns the age of the newest file in days, 0 when unknown.
func (r Result) AgeDays(now time.Time) int {
	if r.Newest.IsZero() {
		return 0
	}
	age := now.Sub(r.Newest)
	if age < 0 {
		return 0
	}
	return int(age.Hours() / 24)
}

func isBelow(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != ".." && !filepath.IsAbs(rel) && rel != "." && !hasDotDotPrefix(rel)
}

func hasDotDotPrefix(rel string) bool {
	return rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator)
}
