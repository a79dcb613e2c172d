package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	base := errors.New("boom")
	wrapped := WrapError(base, "while connecting")

	assert.ErrorIs(t, wrapped, base)
	assert.Equal(t, "while connecting: boom", wrapped.Error())

	assert.Equal(t, "while connecting", WrapError(nil, "while connecting").Error())
}

func TestGracefulShutdownRunsLIFO(t *testing.T) {
	g := NewGracefulShutdown(time.Second, DefaultLogger("test"))

	var order []int
	g.Register(func() error { order = append(order, 1); return nil })
	g.Register(func() error { order = append(order, 2); return nil })

	require.NoError(t, g.Shutdown(context.Background()))
	assert.Equal(t, []int{2, 1}, order)
}

func TestGracefulShutdownReportsFailure(t *testing.T) {
	g := NewGracefulShutdown(time.Second, DefaultLogger("test"))
	fail := errors.New("close failed")
	g.Register(func() error { return fail })

	assert.ErrorIs(t, g.Shutdown(context.Background()), fail)
}

func TestGracefulShutdownTimeout(t *testing.T) {
	g := NewGracefulShutdown(50*time.Millisecond, DefaultLogger("test"))
	g.Register(func() error {
		time.Sleep(time.Second)
		return nil
	})

	err := g.Shutdown(context.Background())
	require.Error(t, err)
}
