package suggestion

import (
	"fmt"
	"strings"
)

// builtin maps configured provider names to constructors.
var builtin = map[string]func() Provider{
	"keyword": func() Provider { return NewKeyword() },
}

// ProvidersByName builds the named built-in providers in the given order.
func ProvidersByName(names []string) ([]Provider, error) {
	providers := make([]Provider, 0, len(names))
	for _, name := range names {
		newProvider, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
		}
		providers = append(providers, newProvider())
	}
	return providers, nil
}
