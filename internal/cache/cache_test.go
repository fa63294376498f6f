package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCachesUntilInvalidated(t *testing.T) {
	c := New(time.Minute)
	calls := 0
	load := func() ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	v, err := Fetch(c, KeySkills, load)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v)

	_, err = Fetch(c, KeySkills, load)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	c.Invalidate(KeySkills)
	_, err = Fetch(c, KeySkills, load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestFetchDoesNotCacheErrors(t *testing.T) {
	c := New(time.Minute)
	calls := 0
	load := func() (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("boom")
		}
		return 42, nil
	}

	_, err := Fetch(c, KeyProjects, load)
	require.Error(t, err)

	v, err := Fetch(c, KeyProjects, load)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestDisabledCacheAlwaysLoads(t *testing.T) {
	calls := 0
	load := func() (int, error) {
		calls++
		return calls, nil
	}

	for _, c := range []*Cache{New(0), nil} {
		calls = 0
		_, _ = Fetch(c, KeyServices, load)
		v, err := Fetch(c, KeyServices, load)
		require.NoError(t, err)
		assert.Equal(t, 2, v)
		c.Invalidate(KeyServices)
	}
}

func TestFetchDropsLoadOverlappingInvalidate(t *testing.T) {
	c := New(time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})

	done := make(chan []string)
	go func() {
		v, _ := Fetch(c, KeyProjects, func() ([]string, error) {
			close(started)
			<-release
			return []string{"stale"}, nil
		})
		done <- v
	}()

	<-started
	c.Invalidate(KeyProjects)
	close(release)
	assert.Equal(t, []string{"stale"}, <-done)

	v, err := Fetch(c, KeyProjects, func() ([]string, error) {
		return []string{"fresh"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, v)
}
