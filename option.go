package dfa

import (
	"github.com/Azure/go-dfa/flcore"
	"github.com/Azure/go-dfa/flcore/to"
	"github.com/benbjohnson/clock"
)

// Option alters the ambient behavior of a DFA, it never changes the accepted language.
type Option func(*options)

type options struct {
	logger flcore.Logger
	clock  clock.Clock
}

// WithLogger logs every move and verdict at Debug level.
func WithLogger(logger flcore.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock sets the clock timing Trace spans, use clock.NewMock() in unit test.
func WithClock(clock clock.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

func newOptions(opts ...Option) options {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.logger = to.CoalesceFunc(func() flcore.Logger { return o.logger }, flcore.Discard)
	o.clock = to.CoalesceFunc(func() clock.Clock { return o.clock }, clock.New)
	return o
}
