package iox

import (
	"log/slog"

	"github.com/iox-format/go-iox/types"
)

type options struct {
	registry *types.Registry
	vars     types.Vars
	maxDepth int
	logger   *slog.Logger
}

type Option func(*options)

// WithRegistry sets the type registry; the default holds the built-in
// types.
func WithRegistry(r *types.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithVars adds variables. They take precedence over variables declared in
// a document header.
func WithVars(v types.Vars) Option {
	return func(o *options) {
		if o.vars == nil {
			o.vars = types.Vars{}
		}
		for k, x := range v {
			o.vars[k] = x
		}
	}
}

// WithMaxDepth limits nesting of objects and arrays below the root. Zero
// means no limit.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// WithLogger sets a logger for debug level progress messages.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func makeOptions(opts []Option) *options {
	o := &options{}
	for _, f := range opts {
		f(o)
	}
	if o.registry == nil {
		o.registry = types.DefaultRegistry()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

func (o *options) env(vars types.Vars) *types.Env {
	env := types.NewEnv(o.registry)
	if o.maxDepth > 0 {
		// the root object
		env.MaxDepth = o.maxDepth + 1
	}
	env.Vars = types.Vars{}
	for k, v := range vars {
		env.Vars[k] = v
	}
	for k, v := range o.vars {
		env.Vars[k] = v
	}
	return env
}
