package initcenters

import "errors"

// ErrEmptyDataset indicates an empty Dataset or empty subset was supplied.
var ErrEmptyDataset = errors.New("initcenters: dataset is empty")
