package cache

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/ngc/foundation/ngc/token"
)

func TestCacheGetSet(t *testing.T) {
	c := New[int](DefaultConfig())
	defer c.Close()

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", 1)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	hits, misses, rate := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
	assert.Equal(t, 50.0, rate)

	c.Delete("a")
	assert.Equal(t, 0, c.Size())
}

func TestCacheExpiry(t *testing.T) {
	c := New[string](Config{TTL: time.Minute})
	defer c.Close()

	c.SetWithTTL("short", "x", time.Millisecond)
	c.SetWithTTL("forever", "y", 0)
	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get("short")
	assert.False(t, ok)
	v, ok := c.Get("forever")
	assert.True(t, ok)
	assert.Equal(t, "y", v)
}

func TestCacheEvictsAtCapacity(t *testing.T) {
	c := New[int](Config{MaxItems: 3})
	defer c.Close()

	for i := 0; i < 5; i++ {
		c.Set(strconv.Itoa(i), i)
	}
	assert.Equal(t, 3, c.Size())

	// overwriting an existing key does not evict
	c.Set("4", 40)
	assert.Equal(t, 3, c.Size())
}

func TestCacheGetOrSet(t *testing.T) {
	c := New[int](DefaultConfig())
	defer c.Close()

	calls := 0
	fn := func() (int, error) {
		calls++
		return 7, nil
	}

	v, err := c.GetOrSet("k", fn)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	v, err = c.GetOrSet("k", fn)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, calls)

	_, err = c.GetOrSet("fail", func() (int, error) { return 0, errors.New("boom") })
	assert.EqualError(t, err, "boom")
	_, ok := c.Get("fail")
	assert.False(t, ok)
}

func TestCacheClear(t *testing.T) {
	c := New[int](DefaultConfig())
	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()
	assert.Equal(t, 0, c.Size())

	c.Close()
	c.Close()
}

func TestSourceKey(t *testing.T) {
	assert.Equal(t, SourceKey("G0 X1\n"), SourceKey("G0 X1\n"))
	assert.NotEqual(t, SourceKey("G0 X1\n"), SourceKey("G0 X2\n"))
	assert.Len(t, SourceKey(""), 64)
}

func TestProgramCache(t *testing.T) {
	pc := NewProgramCache(DefaultConfig())
	defer pc.Close()

	calls := 0
	parse := func(src string) (*token.Program, error) {
		calls++
		if src == "bad" {
			return nil, errors.New("syntax")
		}
		return &token.Program{Framing: token.FramingPercent}, nil
	}

	p1, hit, err := pc.Parse("%\nG0 X1\n%\n", parse)
	require.NoError(t, err)
	assert.False(t, hit)
	p2, hit, err := pc.Parse("%\nG0 X1\n%\n", parse)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Same(t, p1, p2)

	_, hit, err = pc.Parse("bad", parse)
	assert.False(t, hit)
	assert.EqualError(t, err, "syntax")
	_, hit, err = pc.Parse("bad", parse)
	assert.True(t, hit)
	assert.EqualError(t, err, "syntax")

	assert.Equal(t, 2, calls)
	hits, misses := pc.Stats()
	assert.Equal(t, int64(2), hits)
	assert.Equal(t, int64(2), misses)
}
