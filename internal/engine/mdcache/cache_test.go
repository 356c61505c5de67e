package mdcache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/visit/internal/core/domain"
	"go.trai.ch/visit/internal/core/ports/mocks"
	"go.trai.ch/visit/internal/engine/mdcache"
	"go.uber.org/mock/gomock"
)

func newCache(t *testing.T, size int) *mdcache.Cache[domain.Metadata] {
	t.Helper()
	c, err := mdcache.New[domain.Metadata]("metadata", size, (*domain.Metadata).Clone, nil)
	require.NoError(t, err)
	return c
}

// fetchOnce returns a fetch function that fails the test when called twice.
func fetchOnce(t *testing.T, md *domain.Metadata, stateful bool) mdcache.FetchFunc[domain.Metadata] {
	t.Helper()
	called := false
	return func(context.Context) (mdcache.Fetched[domain.Metadata], error) {
		require.False(t, called, "fetched twice")
		called = true
		return mdcache.Fetched[domain.Metadata]{Value: md, Stateful: stateful}, nil
	}
}

func failFetch(t *testing.T) mdcache.FetchFunc[domain.Metadata] {
	t.Helper()
	return func(context.Context) (mdcache.Fetched[domain.Metadata], error) {
		t.Fatal("unexpected fetch")
		return mdcache.Fetched[domain.Metadata]{}, nil
	}
}

func TestKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "h:/f", mdcache.StatelessKey("h:/f"))
	assert.Equal(t, "h:/f00000003", mdcache.StatefulKey("h:/f", 3))
	assert.Equal(t, "h:/f12345678", mdcache.StatefulKey("h:/f", 12345678))
}

func TestCache_StatelessEntryServesEveryState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newCache(t, 10)
	file := domain.ParseQualifiedFilename("/a/b/file.ext")

	md := &domain.Metadata{FullName: file.FullName(), NumStates: 4}
	got, ok, err := c.Get(ctx, mdcache.Lookup{File: file, TimeState: 0}, fetchOnce(t, md, false))
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotSame(t, md, got, "fetched values are copied")
	assert.Equal(t, []string{file.FullName()}, c.Keys())

	for _, state := range []int{0, 2, 3} {
		got, ok, err := c.Get(ctx, mdcache.Lookup{File: file, TimeState: state, AnyStateOk: true, DontGetNew: true}, failFetch(t))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 4, got.NumStates)
	}
}

func TestCache_StatefulEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newCache(t, 10)
	file := domain.ParseQualifiedFilename("/a/b/file.ext")

	md := &domain.Metadata{FullName: file.FullName(), MustRepopulateOnStateChange: true}
	_, ok, err := c.Get(ctx, mdcache.Lookup{File: file, TimeState: 3}, fetchOnce(t, md, true))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{file.FullName() + "00000003"}, c.Keys())

	_, ok, err = c.Get(ctx, mdcache.Lookup{File: file, TimeState: 3, DontGetNew: true}, failFetch(t))
	require.NoError(t, err)
	assert.True(t, ok)

	_, ok, err = c.Get(ctx, mdcache.Lookup{File: file, TimeState: 5, DontGetNew: true}, failFetch(t))
	require.NoError(t, err)
	assert.False(t, ok, "another state is not cached")

	_, ok, err = c.Get(ctx, mdcache.Lookup{File: file, TimeState: 5, AnyStateOk: true, DontGetNew: true}, failFetch(t))
	require.NoError(t, err)
	assert.True(t, ok, "any cached state is accepted")
}

func TestCache_AnyStateScanIsExact(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newCache(t, 10)

	long := domain.ParseQualifiedFilename("/a/b/file.ext.bak")
	_, _, err := c.Get(ctx, mdcache.Lookup{File: long}, fetchOnce(t, &domain.Metadata{}, false))
	require.NoError(t, err)

	short := domain.ParseQualifiedFilename("/a/b/file.ext")
	_, ok, err := c.Get(ctx, mdcache.Lookup{File: short, AnyStateOk: true, DontGetNew: true}, failFetch(t))
	require.NoError(t, err)
	assert.False(t, ok, "a longer name sharing the prefix is a different file")
}

func TestCache_TreatAllAsTimeVarying(t *testing.T) {
	t.Parallel()
	c := newCache(t, 10)
	c.TreatAllAsTimeVarying(true)
	file := domain.ParseQualifiedFilename("/f.csv")

	_, _, err := c.Get(context.Background(), mdcache.Lookup{File: file, TimeState: 1}, fetchOnce(t, &domain.Metadata{}, false))
	require.NoError(t, err)
	assert.Equal(t, []string{mdcache.StatefulKey(file.FullName(), 1)}, c.Keys())
}

func TestCache_FetchError(t *testing.T) {
	t.Parallel()
	c := newCache(t, 10)
	boom := errors.New("boom")

	_, ok, err := c.Get(context.Background(), mdcache.Lookup{File: domain.ParseQualifiedFilename("/f")},
		func(context.Context) (mdcache.Fetched[domain.Metadata], error) {
			return mdcache.Fetched[domain.Metadata]{}, boom
		})
	assert.ErrorIs(t, err, boom)
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestCache_ClearFilePrefix(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newCache(t, 10)

	file := domain.ParseQualifiedFilename("/a/b/file.ext")
	sibling := domain.ParseQualifiedFilename("/a/b/file2.ext")

	_, _, err := c.Get(ctx, mdcache.Lookup{File: file, TimeState: 3}, fetchOnce(t, &domain.Metadata{}, true))
	require.NoError(t, err)
	_, _, err = c.Get(ctx, mdcache.Lookup{File: file}, fetchOnce(t, &domain.Metadata{}, false))
	require.NoError(t, err)
	_, _, err = c.Get(ctx, mdcache.Lookup{File: sibling}, fetchOnce(t, &domain.Metadata{}, false))
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())

	assert.Equal(t, 2, c.ClearFile(file))
	assert.Equal(t, []string{sibling.FullName()}, c.Keys())

	_, ok, err := c.Get(ctx, mdcache.Lookup{File: file, AnyStateOk: true, DontGetNew: true}, nil)
	require.NoError(t, err)
	assert.False(t, ok, "no stale entry after ClearFile")
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newCache(t, 2)

	a := domain.ParseQualifiedFilename("/a")
	b := domain.ParseQualifiedFilename("/b")
	d := domain.ParseQualifiedFilename("/d")

	for _, f := range []domain.QualifiedFilename{a, b} {
		_, _, err := c.Get(ctx, mdcache.Lookup{File: f}, fetchOnce(t, &domain.Metadata{}, false))
		require.NoError(t, err)
	}
	_, ok, _ := c.Get(ctx, mdcache.Lookup{File: a, DontGetNew: true}, nil)
	require.True(t, ok)

	_, _, err := c.Get(ctx, mdcache.Lookup{File: d}, fetchOnce(t, &domain.Metadata{}, false))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{a.FullName(), d.FullName()}, c.Keys())
}

func TestCache_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := newCache(t, 10)
	file := domain.ParseQualifiedFilename("/sim")

	_, _, err := c.Get(ctx, mdcache.Lookup{File: file, TimeState: 2}, fetchOnce(t, &domain.Metadata{NumStates: 1}, true))
	require.NoError(t, err)

	key := c.Update(file, 2, &domain.Metadata{NumStates: 7}, true)
	assert.Equal(t, mdcache.StatefulKey(file.FullName(), 2), key)
	assert.Equal(t, 1, c.Len())

	got, ok, err := c.Get(ctx, mdcache.Lookup{File: file, TimeState: 2, DontGetNew: true}, nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 7, got.NumStates)

	other := domain.ParseQualifiedFilename("/new")
	assert.Equal(t, other.FullName(), c.Update(other, 0, &domain.Metadata{}, false))
}

func TestCache_RecordsLookups(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	metrics := mocks.NewMockMetrics(ctrl)

	gomock.InOrder(
		metrics.EXPECT().CacheLookup("sil", false),
		metrics.EXPECT().CacheLookup("sil", true),
	)

	c, err := mdcache.New[domain.SIL]("sil", 0, (*domain.SIL).Clone, metrics)
	require.NoError(t, err)

	file := domain.ParseQualifiedFilename("/f")
	fetch := func(context.Context) (mdcache.Fetched[domain.SIL], error) {
		return mdcache.Fetched[domain.SIL]{Value: &domain.SIL{}}, nil
	}
	_, _, err = c.Get(context.Background(), mdcache.Lookup{File: file}, fetch)
	require.NoError(t, err)
	_, _, err = c.Get(context.Background(), mdcache.Lookup{File: file}, fetch)
	require.NoError(t, err)
}
