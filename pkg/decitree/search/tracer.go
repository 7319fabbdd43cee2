package search

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"

	"github.com/operator-framework/decitree/pkg/decitree"
)

type position struct {
	event    decitree.Event
	id       decitree.NodeID
	depth    int
	frontier int
	children int
	emitted  int
}

func (p position) Event() decitree.Event { return p.event }
func (p position) NodeID() decitree.NodeID { return p.id }
func (p position) Depth() int { return p.depth }
func (p position) FrontierSize() int { return p.frontier }
func (p position) Children() int { return p.children }
func (p position) Emitted() int { return p.emitted }

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ decitree.SearchPosition) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p decitree.SearchPosition) {
	fmt.Fprintf(t.Writer, "---\nEvent: %s\n", p.Event())
	fmt.Fprintf(t.Writer, "Node: %s\n", p.NodeID())
	fmt.Fprintf(t.Writer, "Depth: %d\n", p.Depth())
	fmt.Fprintf(t.Writer, "Frontier: %d\n", p.FrontierSize())
	if p.Event() == decitree.Expanded {
		fmt.Fprintf(t.Writer, "Children: %d\n", p.Children())
	}
}

// LogrTracer reports every step at verbosity 1, and yielded or discarded
// branches at verbosity 0.
type LogrTracer struct {
	Logger logr.Logger
}

func (t LogrTracer) Trace(p decitree.SearchPosition) {
	l := t.Logger.WithValues("node", p.NodeID(), "depth", p.Depth(), "frontier", p.FrontierSize())
	switch p.Event() {
	case decitree.Yielded:
		l.Info("branch yielded", "emitted", p.Emitted())
	case decitree.Discarded:
		l.Info("equivalent branch discarded")
	case decitree.Expanded:
		l.V(1).Info("node expanded", "children", p.Children())
	default:
		l.V(1).Info("node popped")
	}
}
