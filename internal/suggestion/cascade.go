package suggestion

import (
	"context"
	"fmt"
	"time"

	pkgLog "smart-task-assistant/pkg/log"
)

// Limiter buckets are kept apart per operation.
const (
	opSubtasks      = "subtasks"
	opComplementary = "complementary"
)

// Config tunes the cascade.
type Config struct {
	RateLimitPerMin int // per user and provider; 0 disables limiting
	MaxItems        int
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // budget for the whole provider chain
}

// Cascade asks providers in priority order and falls back to the keyword
// table for subtasks when all of them fail or return nothing.
type Cascade struct {
	providers []Provider
	fallback  Keyword
	limiter   *rateLimiter
	config    Config
	l         pkgLog.Logger
}

// NewCascade creates a Cascade over providers, highest priority first.
func NewCascade(l pkgLog.Logger, config Config, providers ...Provider) *Cascade {
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}
	c := &Cascade{
		providers: providers,
		fallback:  NewKeyword(),
		config:    config,
		l:         l,
	}
	if config.RateLimitPerMin > 0 {
		c.limiter = newRateLimiter(config.RateLimitPerMin)
	}
	return c
}

// Subtasks always returns at least one item.
func (c *Cascade) Subtasks(ctx context.Context, userID, title string) []string {
	items, err := c.run(ctx, userID, opSubtasks, func(ctx context.Context, p Provider) ([]string, error) {
		return p.Subtasks(ctx, title)
	})
	if err == nil {
		return items
	}
	if len(c.providers) > 0 {
		c.l.Warnf(ctx, "suggestion.Cascade.Subtasks: falling back to keyword table: %v", err)
	}
	return CleanItems(c.fallback.Match(title), c.config.MaxItems)
}

// Complementary returns an empty slice when no provider has suggestions.
func (c *Cascade) Complementary(ctx context.Context, userID, title string) []string {
	items, err := c.run(ctx, userID, opComplementary, func(ctx context.Context, p Provider) ([]string, error) {
		return p.Complementary(ctx, title)
	})
	if err != nil {
		c.l.Debugf(ctx, "suggestion.Cascade.Complementary: %v", err)
		return []string{}
	}
	return items
}

// Plan returns the keyword step-by-step plan for title.
func (c *Cascade) Plan(title string) []string {
	return CleanItems(c.fallback.Plan(title), c.config.MaxItems)
}

func (c *Cascade) run(
	ctx context.Context,
	userID, op string,
	call func(context.Context, Provider) ([]string, error),
) ([]string, error) {
	if len(c.providers) == 0 {
		return nil, ErrNoSuggestions
	}

	if c.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for _, p := range c.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("timeout after trying %d provider(s): %w", len(c.providers), ctx.Err())
		default:
		}

		if c.limiter != nil && !c.limiter.Allow(userID+"/"+p.Name()+"/"+op) {
			lastErr = &ProviderError{Provider: p.Name(), Err: ErrRateLimited}
			c.l.Warnf(ctx, "suggestion.Cascade: %v", lastErr)
			continue
		}

		items, err := c.callWithRetry(ctx, p, call)
		if err == nil {
			items = CleanItems(items, c.config.MaxItems)
			if len(items) > 0 {
				return items, nil
			}
			err = ErrNoSuggestions
		}
		lastErr = &ProviderError{Provider: p.Name(), Err: err}
		c.l.Debugf(ctx, "suggestion.Cascade: %v", lastErr)
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

func (c *Cascade) callWithRetry(
	ctx context.Context,
	p Provider,
	call func(context.Context, Provider) ([]string, error),
) ([]string, error) {
	var lastErr error
	for attempt := 0; attempt < c.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * c.config.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		items, err := call(ctx, p)
		if err == nil {
			return items, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
