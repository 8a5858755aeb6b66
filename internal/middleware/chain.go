package middleware

import (
	"context"
	"sort"
)

// Chain executes middleware in order
type Chain struct {
	middlewares []Middleware
}

// NewChain creates a new middleware chain
func NewChain(middlewares []Middleware) *Chain {
	sorted := make([]Middleware, len(middlewares))
	copy(sorted, middlewares)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order() < sorted[j].Order()
	})

	return &Chain{middlewares: sorted}
}

// Execute executes the middleware chain
func (c *Chain) Execute(ctx context.Context, req *Request, finalHandler Handler) (*Response, error) {
	enabled := make([]Middleware, 0, len(c.middlewares))
	for _, mw := range c.middlewares {
		if mw.Enabled() {
			enabled = append(enabled, mw)
		}
	}

	index := 0
	var next Handler
	next = func(ctx context.Context) (*Response, error) {
		if index >= len(enabled) {
			return finalHandler(ctx)
		}
		mw := enabled[index]
		index++
		return mw.Execute(ctx, req, next)
	}

	return next(ctx)
}
