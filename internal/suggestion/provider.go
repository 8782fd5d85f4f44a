package suggestion

import "context"

// Provider produces task suggestions. Generative services plug in here;
// Keyword is the built-in, always-available implementation.
type Provider interface {
	// Subtasks returns short, practical steps for completing title.
	Subtasks(ctx context.Context, title string) ([]string, error)

	// Complementary returns tasks that pair well with title.
	Complementary(ctx context.Context, title string) ([]string, error)

	// Name returns the provider name used in logs and limiter keys.
	Name() string
}
