package search

import (
	"errors"

	"github.com/go-logr/logr"

	"github.com/operator-framework/decitree/pkg/decitree"
	"github.com/operator-framework/decitree/pkg/decitree/search/idprovider"
)

type settings struct {
	tracer     decitree.Tracer
	idProvider decitree.IDProvider
	logger     *logr.Logger
}

type Option func(s *settings) error

// WithTracer installs a tracer that is notified of every step of the search.
func WithTracer(t decitree.Tracer) Option {
	return func(s *settings) error {
		if t == nil {
			return errors.New("tracer must not be nil")
		}
		s.tracer = t
		return nil
	}
}

// WithIDProvider overrides the per-search counter used to tag decision nodes.
// A provider may be shared between searches to get ids that are distinct
// across all of them.
func WithIDProvider(p decitree.IDProvider) Option {
	return func(s *settings) error {
		if p == nil {
			return errors.New("id provider must not be nil")
		}
		s.idProvider = p
		return nil
	}
}

func WithLogger(l logr.Logger) Option {
	return func(s *settings) error {
		s.logger = &l
		return nil
	}
}

var defaults = []Option{
	func(s *settings) error {
		if s.tracer == nil {
			s.tracer = DefaultTracer{}
		}
		return nil
	},
	func(s *settings) error {
		if s.idProvider == nil {
			s.idProvider = idprovider.NewCounter()
		}
		return nil
	},
	func(s *settings) error {
		if s.logger == nil {
			l := logr.Discard()
			s.logger = &l
		}
		return nil
	},
}
