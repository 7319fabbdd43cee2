package cnf

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/go-logr/logr"

	"github.com/operator-framework/decitree/pkg/decitree"
	"github.com/operator-framework/decitree/pkg/decitree/search"
)

const satisfiable = 1

// Assignment sets a single variable.
type Assignment struct {
	Var   int
	Value bool
}

func (a Assignment) Lit() z.Lit {
	if a.Value {
		return z.Dimacs2Lit(a.Var)
	}
	return z.Dimacs2Lit(-a.Var)
}

// Model assigns every variable of a problem, in variable order.
type Model []Assignment

// String renders the model as a DIMACS solution line.
func (m Model) String() string {
	var b strings.Builder
	b.WriteString("v")
	for _, a := range m {
		if a.Value {
			fmt.Fprintf(&b, " %d", a.Var)
		} else {
			fmt.Fprintf(&b, " -%d", a.Var)
		}
	}
	b.WriteString(" 0")
	return b.String()
}

// Enumerator lists the models of a problem by assigning variables one at a
// time, asking gini whether the partial assignment can still be completed
// before descending into it.
type Enumerator struct {
	dimacs *Dimacs
	g      *gini.Gini
	log    logr.Logger
	tracer decitree.Tracer
	checks int
}

type Option func(e *Enumerator)

func WithLogger(l logr.Logger) Option {
	return func(e *Enumerator) {
		e.log = l
	}
}

func WithTracer(t decitree.Tracer) Option {
	return func(e *Enumerator) {
		e.tracer = t
	}
}

func NewEnumerator(d *Dimacs, options ...Option) *Enumerator {
	e := &Enumerator{
		dimacs: d,
		g:      gini.New(),
		log:    logr.Discard(),
		tracer: search.DefaultTracer{},
	}
	for _, applyOption := range options {
		applyOption(e)
	}

	// teach all clauses to the solver
	for _, clause := range d.Clauses() {
		for _, lit := range clause {
			e.g.Add(z.Dimacs2Lit(lit))
		}
		e.g.Add(z.LitNull)
	}
	return e
}

// Config describes the tree of satisfiable partial assignments. Leaves
// are models. False is offered before true, so true is explored first.
func (e *Enumerator) Config() decitree.Config[Assignment] {
	return decitree.Config[Assignment]{
		Expand: func(branch decitree.Branch[Assignment]) []Assignment {
			v := len(branch) + 1
			if v > e.dimacs.Variables() {
				return nil
			}
			var next []Assignment
			for _, value := range []bool{false, true} {
				candidate := Assignment{Var: v, Value: value}
				if e.extends(branch, candidate) {
					next = append(next, candidate)
				}
			}
			return next
		},
		IsTerminal: func(branch decitree.Branch[Assignment]) bool {
			return len(branch) == e.dimacs.Variables()
		},
	}
}

// extends reports whether the formula is satisfiable with the branch and
// candidate assumed. Assumptions are dropped by gini after every Solve.
func (e *Enumerator) extends(branch decitree.Branch[Assignment], candidate Assignment) bool {
	for _, a := range branch {
		e.g.Assume(a.Lit())
	}
	e.g.Assume(candidate.Lit())
	e.checks++
	return e.g.Solve() == satisfiable
}

// Satisfiable reports whether the problem has at least one model.
func (e *Enumerator) Satisfiable() bool {
	return e.g.Solve() == satisfiable
}

// Models returns up to limit models, or all of them when limit is not
// positive.
func (e *Enumerator) Models(ctx context.Context, limit int) ([]Model, error) {
	s, err := search.New(e.Config(), search.WithTracer(e.tracer), search.WithLogger(e.log))
	if err != nil {
		return nil, err
	}
	branches, err := search.Collect(ctx, s, limit)
	models := make([]Model, 0, len(branches))
	for _, branch := range branches {
		models = append(models, Model(branch))
	}
	e.log.V(1).Info("models enumerated", "count", len(models), "checks", e.checks)
	return models, err
}
