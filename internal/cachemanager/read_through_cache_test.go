package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type wrappedInput struct {
	Path string
}

// countingLoader tracks how many times the backing load ran.
type countingLoader struct {
	calls int
	err   error
}

func (l *countingLoader) load(_ context.Context, input wrappedInput) (ExampleStruct, error) {
	l.calls++
	if l.err != nil {
		return ExampleStruct{}, l.err
	}
	return ExampleStruct{ID: l.calls, Name: input.Path}, nil
}

func TestReadThroughCache_Get_MissLoadsAndCaches(t *testing.T) {
	cache := NewInMemoryCacheManager[string, ExampleStruct]("files", DefaultExpiration, DefaultCleanupInterval)
	loader := &countingLoader{}
	rtc := NewReadThroughCache(cache, loader.load, false)

	first, err := rtc.Get(context.Background(), "a.yaml", wrappedInput{Path: "a.yaml"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 1, first.ID)

	// Second get for the same key is served from cache.
	second, err := rtc.Get(context.Background(), "a.yaml", wrappedInput{Path: "a.yaml"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, loader.calls)

	// A different key loads again.
	_, err = rtc.Get(context.Background(), "b.yaml", wrappedInput{Path: "b.yaml"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 2, loader.calls)
}

func TestReadThroughCache_Get_WithCacheDisabled(t *testing.T) {
	cache := NewInMemoryCacheManager[string, ExampleStruct]("files", DefaultExpiration, DefaultCleanupInterval)
	loader := &countingLoader{}
	rtc := NewReadThroughCache(cache, loader.load, true)

	for i := 1; i <= 3; i++ {
		value, err := rtc.Get(context.Background(), "a.yaml", wrappedInput{Path: "a.yaml"}, time.Minute)
		require.NoError(t, err)
		require.Equal(t, i, value.ID, "every get should hit the loader")
	}
	require.Equal(t, 3, loader.calls)
}

func TestReadThroughCache_Get_LoadErrorNotCached(t *testing.T) {
	cache := NewInMemoryCacheManager[string, ExampleStruct]("files", DefaultExpiration, DefaultCleanupInterval)
	loader := &countingLoader{err: errors.New("parse failed")}
	rtc := NewReadThroughCache(cache, loader.load, false)

	_, err := rtc.Get(context.Background(), "bad.yaml", wrappedInput{Path: "bad.yaml"}, time.Minute)
	require.Error(t, err)

	// The failed load must not be cached; a recovered loader succeeds.
	loader.err = nil
	value, err := rtc.Get(context.Background(), "bad.yaml", wrappedInput{Path: "bad.yaml"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 2, value.ID)
}

func TestReadThroughCache_GetWithRefresh(t *testing.T) {
	cache := NewInMemoryCacheManager[string, ExampleStruct]("files", DefaultExpiration, DefaultCleanupInterval)
	loader := &countingLoader{}
	rtc := NewReadThroughCache(cache, loader.load, false)

	_, err := rtc.GetWithRefresh(context.Background(), "a.yaml", wrappedInput{Path: "a.yaml"}, time.Minute)
	require.NoError(t, err)

	value, err := rtc.GetWithRefresh(context.Background(), "a.yaml", wrappedInput{Path: "a.yaml"}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 1, value.ID)
	require.Equal(t, 1, loader.calls)
}
