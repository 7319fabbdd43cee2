package logging

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/operator-framework/decitree/pkg/decitree"
	"github.com/operator-framework/decitree/pkg/decitree/search"
)

// Options are the logging flags shared by every command.
type Options struct {
	Verbosity int
	Trace     bool
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&o.Verbosity, "verbosity", "v", 0, "log verbosity, higher is more detailed")
	fs.BoolVar(&o.Trace, "trace", false, "log every step of the search")
}

func (o *Options) Logger(w io.Writer) logr.Logger {
	return New(w, o.Verbosity)
}

// Tracer returns a tracer logging through l when tracing is enabled.
func (o *Options) Tracer(l logr.Logger) decitree.Tracer {
	if !o.Trace {
		return search.DefaultTracer{}
	}
	return search.LogrTracer{Logger: l.WithName("search")}
}
