package workerpool

// ParallelFor applies f to successive, disjoint, contiguous sub-ranges of
// [0, n) using p. It slices [0,n) into p.Workers()+1 approximately equal
// chunks, submits p.Workers() of them to the pool, executes the last chunk
// on the calling goroutine, and then joins every submitted Handle. If p is
// nil, f is invoked once for the whole range [0, n) on the calling
// goroutine — the sequential fallback every algorithm must also support and
// produce identical results under (see package docs on commutative
// reduction).
//
// f receives a half-open [lo, hi) sub-range; it must not assume any
// particular chunk size or ordering relative to other chunks.
//
// A panic inside a submitted chunk is captured rather than left to crash the
// worker; ParallelFor waits on every submitted Handle regardless of earlier
// panics, then re-raises the first one encountered (in handle order) on the
// calling goroutine once all chunks have finished. A panic in the final
// chunk, which runs on the calling goroutine, is not captured: it
// propagates at once, without waiting on the submitted Handles.
func ParallelFor(p *Pool, n int, f func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if p == nil {
		f(0, n)
		return
	}

	chunks := p.Workers() + 1
	if chunks > n {
		chunks = n
	}
	size := n / chunks
	if size == 0 {
		size = 1
	}

	handles := make([]*Handle, 0, chunks-1)
	lo := 0
	for c := 0; c < chunks-1; c++ {
		hi := lo + size
		if hi > n {
			hi = n
		}
		l, h := lo, hi
		handle, err := p.AddTask(func() { f(l, h) })
		if err == nil {
			handles = append(handles, handle)
		} else {
			// Pool closed underneath us: fall back to running this chunk
			// inline rather than losing the work.
			f(l, h)
		}
		lo = hi
	}

	// Run the final chunk, including any remainder, on the calling
	// goroutine.
	if lo < n {
		f(lo, n)
	}

	var firstPanic any
	for _, h := range handles {
		if p := h.WaitPanic(); p != nil && firstPanic == nil {
			firstPanic = p
		}
	}
	if firstPanic != nil {
		panic(firstPanic)
	}
}
