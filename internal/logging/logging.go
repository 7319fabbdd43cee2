package logging

import (
	"io"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// New returns a logger writing to w, or to stderr when w is nil, so that
// command output on stdout stays machine readable. Messages logged with
// V(n) are only printed when n <= verbosity.
func New(w io.Writer, verbosity int) logr.Logger {
	if w == nil {
		w = os.Stderr
	}
	stdr.SetVerbosity(verbosity)
	return stdr.NewWithOptions(log.New(w, "", log.LstdFlags), stdr.Options{LogCaller: stdr.None})
}

// Named returns a logger scoped to a component.
func Named(l logr.Logger, component string) logr.Logger {
	return l.WithName(component).WithValues("component", component)
}
