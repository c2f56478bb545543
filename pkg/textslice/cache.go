package textslice

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMatcherCacheSize is the default number of compiled matchers kept by
// a CachedFactory. Matchers are small (a compiled pattern or automaton plus
// per-text scan state), so the default is generous.
const DefaultMatcherCacheSize = 256

// CachedFactory wraps a MatcherFactory with LRU caching so repeated slicing
// with a recurring vocabulary reuses compiled matchers instead of rebuilding
// them on every call.
//
// Cached matchers carry per-text scan state, so a CachedFactory must not be
// shared across goroutines.
type CachedFactory struct {
	inner MatcherFactory
	cache *lru.Cache[string, Matcher]
}

// NewCachedFactory creates a caching wrapper around inner. Size determines
// how many terms keep their compiled matcher in memory; size <= 0 selects
// DefaultMatcherCacheSize.
func NewCachedFactory(inner MatcherFactory, size int) *CachedFactory {
	if size <= 0 {
		size = DefaultMatcherCacheSize
	}
	cache, _ := lru.New[string, Matcher](size)
	return &CachedFactory{
		inner: inner,
		cache: cache,
	}
}

// Matcher returns the cached matcher for term, building and caching one on a
// miss. Factory errors are not cached; a failing term is retried on the next
// call.
func (f *CachedFactory) Matcher(term string) (Matcher, error) {
	if m, ok := f.cache.Get(term); ok {
		return m, nil
	}
	m, err := f.inner(term)
	if err != nil {
		return nil, err
	}
	f.cache.Add(term, m)
	return m, nil
}

// Factory exposes the cache as a MatcherFactory for use with WithFactory.
func (f *CachedFactory) Factory() MatcherFactory {
	return f.Matcher
}

// Len reports the number of cached matchers.
func (f *CachedFactory) Len() int {
	return f.cache.Len()
}

// Purge drops every cached matcher.
func (f *CachedFactory) Purge() {
	f.cache.Purge()
}
