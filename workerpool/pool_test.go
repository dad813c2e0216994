package workerpool

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolRunsAllTasks(t *testing.T) {
	p := New(4)
	defer p.Close()

	var counter int64
	handles := make([]*Handle, 0, 20)
	for i := 0; i < 20; i++ {
		h, err := p.AddTask(func() { atomic.AddInt64(&counter, 1) })
		require.NoError(t, err)
		handles = append(handles, h)
	}
	for _, h := range handles {
		h.Wait()
	}
	require.Equal(t, int64(20), counter)
}

func TestPoolClosedRejects(t *testing.T) {
	p := New(2)
	p.Close()
	_, err := p.AddTask(func() {})
	require.ErrorIs(t, err, ErrPoolClosed)
}

func TestHandleWaitRepanics(t *testing.T) {
	p := New(1)
	defer p.Close()

	h, err := p.AddTask(func() { panic("boom") })
	require.NoError(t, err)
	require.PanicsWithValue(t, "boom", func() { h.Wait() })
}

func TestParallelForSequentialNilPool(t *testing.T) {
	var sum int64
	ParallelFor(nil, 100, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt64(&sum, int64(i))
		}
	})
	require.Equal(t, int64(4950), sum)
}

func TestParallelForPooled(t *testing.T) {
	p := New(4)
	defer p.Close()

	var sum int64
	ParallelFor(p, 1000, func(lo, hi int) {
		var local int64
		for i := lo; i < hi; i++ {
			local += int64(i)
		}
		atomic.AddInt64(&sum, local)
	})
	require.Equal(t, int64(499500), sum)
}

func TestParallelForZeroRange(t *testing.T) {
	called := false
	ParallelFor(New(2), 0, func(int, int) { called = true })
	require.False(t, called)
}
