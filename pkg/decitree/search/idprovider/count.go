package idprovider

import (
	"strconv"
	"sync/atomic"

	"github.com/operator-framework/decitree/pkg/decitree"
)

var _ decitree.IDProvider = &Counter{}

// Counter hands out monotonically increasing node ids, starting at 1.
// It is safe for concurrent use.
type Counter struct {
	id int64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) NextNodeID() decitree.NodeID {
	return decitree.NodeID(strconv.FormatInt(atomic.AddInt64(&c.id, 1), 10))
}
