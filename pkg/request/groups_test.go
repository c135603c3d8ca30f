package request

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sendableFunc func(ctx context.Context) error

func (f sendableFunc) SendOrErr(ctx context.Context) error {
	return f(ctx)
}

func TestWaitGroup_CollectsAllErrors(t *testing.T) {
	t.Parallel()
	wg := NewWaitGroup(context.Background())

	var sent int64
	wg.Send(sendableFunc(func(context.Context) error {
		atomic.AddInt64(&sent, 1)
		return fmt.Errorf("first error")
	}))
	wg.Send(sendableFunc(func(context.Context) error {
		atomic.AddInt64(&sent, 1)
		return nil
	}))
	wg.Send(sendableFunc(func(context.Context) error {
		atomic.AddInt64(&sent, 1)
		return fmt.Errorf("second error")
	}))

	err := wg.Wait()
	require.Error(t, err)
	// All requests are sent even when some fail
	assert.Equal(t, int64(3), sent)
	assert.Contains(t, err.Error(), "first error")
	assert.Contains(t, err.Error(), "second error")
}

func TestWaitGroup_SingleErrorIsUnwrapped(t *testing.T) {
	t.Parallel()
	wg := NewWaitGroup(context.Background())
	expected := fmt.Errorf("the only error")
	wg.Send(sendableFunc(func(context.Context) error {
		return expected
	}))
	assert.Equal(t, expected, wg.Wait())
}

func TestWaitGroup_Limit(t *testing.T) {
	t.Parallel()
	wg := NewWaitGroupWithLimit(context.Background(), 2)

	var current, maximum int64
	lock := &sync.Mutex{}
	for i := 0; i < 10; i++ {
		wg.Send(sendableFunc(func(context.Context) error {
			lock.Lock()
			current++
			if current > maximum {
				maximum = current
			}
			lock.Unlock()

			time.Sleep(time.Millisecond)

			lock.Lock()
			current--
			lock.Unlock()
			return nil
		}))
	}
	require.NoError(t, wg.Wait())
	assert.LessOrEqual(t, maximum, int64(2))
}

func TestRunGroup_PostponesUntilRun(t *testing.T) {
	t.Parallel()
	g := NewRunGroup(context.Background())

	var sent int64
	g.Add(sendableFunc(func(context.Context) error {
		atomic.AddInt64(&sent, 1)
		return nil
	}))
	assert.Equal(t, int64(0), atomic.LoadInt64(&sent))

	require.NoError(t, g.RunAndWait())
	assert.Equal(t, int64(1), atomic.LoadInt64(&sent))
}

func TestRunGroup_StopsOnFirstError(t *testing.T) {
	t.Parallel()
	g := NewRunGroup(context.Background())

	expected := fmt.Errorf("request failed")
	g.Add(sendableFunc(func(context.Context) error {
		return expected
	}))
	g.Add(sendableFunc(func(ctx context.Context) error {
		// The shared context is cancelled after the first error
		<-ctx.Done()
		return ctx.Err()
	}))

	err := g.RunAndWait()
	assert.Equal(t, expected, err)
}

func TestRunGroup_AddFromCallback(t *testing.T) {
	t.Parallel()
	g := NewRunGroup(context.Background())

	var sent int64
	g.Add(sendableFunc(func(context.Context) error {
		atomic.AddInt64(&sent, 1)
		g.Add(sendableFunc(func(context.Context) error {
			atomic.AddInt64(&sent, 1)
			return nil
		}))
		return nil
	}))

	require.NoError(t, g.RunAndWait())
	assert.Equal(t, int64(2), atomic.LoadInt64(&sent))
}
