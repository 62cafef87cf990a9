package redisx

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesTimeouts(t *testing.T) {
	c := New("localhost:6379")
	defer c.Close()

	opts := c.Options()
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 2*time.Second, opts.DialTimeout)
	assert.Equal(t, 2*time.Second, opts.ReadTimeout)
	assert.Equal(t, 2*time.Second, opts.WriteTimeout)
}

func TestExists(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	c := New(mr.Addr())
	defer c.Close()
	ctx := context.Background()

	ok, err := Exists(ctx, c, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mr.Set("present", "1"))
	ok, err = Exists(ctx, c, "present")
	require.NoError(t, err)
	assert.True(t, ok)
}
