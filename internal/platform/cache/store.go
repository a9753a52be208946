package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// maxLoadTime bounds a shared load once no caller's ctx governs it.
const maxLoadTime = 30 * time.Second

type entry struct {
	value     any
	expiresAt time.Time
}

// Store is an in-process TTL map used to honour upstream revalidation hints.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	flight  singleflight.Group
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if s == nil || key == "" {
		return nil, false
	}

	now := s.now()
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && !e.expiresAt.After(now) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (s *Store) Set(ctx context.Context, key string, value any) {
	if s == nil {
		return
	}
	s.SetWithTTL(ctx, key, value, s.ttl)
}

// SetWithTTL stores value for ttl; a non-positive ttl never expires.
func (s *Store) SetWithTTL(_ context.Context, key string, value any, ttl time.Duration) {
	if s == nil || key == "" {
		return
	}

	expiresAt := time.Time{}
	if ttl > 0 {
		expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry{
		value:     value,
		expiresAt: expiresAt,
	}
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, key string) {
	if s == nil || key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

func (s *Store) DeletePrefix(_ context.Context, prefix string) {
	if s == nil || prefix == "" {
		return
	}

	s.mu.Lock()
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
		}
	}
	s.mu.Unlock()
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetOrLoad returns the cached value or runs loader once per key across concurrent callers.
// keep decides whether a loaded value is cached; nil keeps everything.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error), keep func(any) bool) (any, error) {
	if s == nil {
		return s.GetOrLoadTTL(ctx, key, 0, loader, keep)
	}
	return s.GetOrLoadTTL(ctx, key, s.ttl, loader, keep)
}

// GetOrLoadTTL is GetOrLoad with a per-key ttl, e.g. the hour-long scorers hint.
// The shared load runs detached from any one caller's cancellation: a caller whose ctx
// ends gets ctx.Err() while the others keep waiting for the result. A ctx marked with
// Refreshing skips the cached value, and a failed or rejected load leaves it in place.
func (s *Store) GetOrLoadTTL(ctx context.Context, key string, ttl time.Duration, loader func(context.Context) (any, error), keep func(any) bool) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if s == nil || key == "" {
		return loader(ctx)
	}

	refresh := isRefreshing(ctx)
	if !refresh {
		if value, ok := s.Get(ctx, key); ok {
			return value, nil
		}
	}

	flightKey := key
	if refresh {
		flightKey = "refresh:" + key
	}
	results := s.flight.DoChan(flightKey, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), maxLoadTime)
		defer cancel()
		if !refresh {
			if cached, ok := s.Get(loadCtx, key); ok {
				return cached, nil
			}
		}

		loaded, loadErr := loader(loadCtx)
		if loadErr != nil {
			return nil, loadErr
		}
		if keep == nil || keep(loaded) {
			s.SetWithTTL(loadCtx, key, loaded, ttl)
		}
		return loaded, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-results:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val, nil
	}
}

type refreshKey struct{}

// Refreshing marks ctx so loads through it bypass cached values and overwrite them only
// on success. The warmer uses it to reload entries without evicting them first.
func Refreshing(ctx context.Context) context.Context {
	return context.WithValue(ctx, refreshKey{}, true)
}

func isRefreshing(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	refresh, _ := ctx.Value(refreshKey{}).(bool)
	return refresh
}
