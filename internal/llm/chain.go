package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Chain tries its members in order and returns the first success.
// It fails with *ErrProviderUnavailable only when every member failed.
type Chain struct {
	members []Provider
	timeout time.Duration
}

// NewChain builds a chain. A positive timeout bounds each member's call.
func NewChain(timeout time.Duration, members ...Provider) *Chain {
	return &Chain{members: members, timeout: timeout}
}

func (c *Chain) Generate(ctx context.Context, req Request) (*Response, error) {
	if len(c.members) == 0 {
		return nil, &ErrProviderUnavailable{Err: errors.New("empty provider chain")}
	}

	var errs []error
	for _, p := range c.members {
		resp, err := c.try(ctx, p, req)
		if err == nil {
			return resp, nil
		}
		// The caller gave up; don't burn the rest of the chain.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		errs = append(errs, fmt.Errorf("%s: %w", p.ModelID(), err))
	}
	return nil, &ErrProviderUnavailable{Err: errors.Join(errs...)}
}

func (c *Chain) try(ctx context.Context, p Provider, req Request) (*Response, error) {
	if c.timeout <= 0 {
		return p.Generate(ctx, req)
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return p.Generate(ctx, req)
}

// ModelID lists the member models in priority order.
func (c *Chain) ModelID() string {
	ids := make([]string, len(c.members))
	for i, p := range c.members {
		ids[i] = p.ModelID()
	}
	return strings.Join(ids, ",")
}

// Len returns the number of members.
func (c *Chain) Len() int { return len(c.members) }
