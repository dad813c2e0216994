package workerpool

import "errors"

// ErrPoolClosed is returned by AddTask/AddTaskIfFree when the Pool has
// already been Closed.
var ErrPoolClosed = errors.New("workerpool: pool is closed")
