package gridgraph

import "errors"

// ErrEmptyGraph indicates a graph with no nodes was passed where at
// least one node is required.
var ErrEmptyGraph = errors.New("gridgraph: graph has no nodes")
