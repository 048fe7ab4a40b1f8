// File: backend.go
// Title: Arithmetic Backends
// Description: Declares the Backend interface implemented by the big, compact
//              and float arithmetic strategies, and a lookup by name.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package mathx

import (
	"sort"
	"strings"

	"github.com/faed235/hyperf-saas-helper/foundation/core/errors"
)

// Backend performs arithmetic on canonical decimal strings. Results are
// truncated toward zero to at most scale fractional digits and returned in
// canonical form. Div reports a zero divisor as an error.
type Backend interface {
	Name() string
	Add(a, b string, scale int) (string, error)
	Sub(a, b string, scale int) (string, error)
	Mul(a, b string, scale int) (string, error)
	Div(a, b string, scale int) (string, error)
	Cmp(a, b string, scale int) int
}

// Backend names accepted by BackendByName.
const (
	BackendBig     = "big"
	BackendCompact = "compact"
	BackendFloat   = "float"
)

var backendFactories = map[string]func() Backend{
	BackendBig:     func() Backend { return NewBigBackend() },
	BackendCompact: func() Backend { return NewCompactBackend() },
	BackendFloat:   func() Backend { return NewFloatBackend() },
}

// BackendByName returns the backend registered under name.
func BackendByName(name string) (Backend, error) {
	factory, ok := backendFactories[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.InvalidInput(errors.ModuleMathx, "backend_by_name", name, strings.Join(BackendNames(), "|"))
	}
	return factory(), nil
}

// BackendNames lists the registered backend names in sorted order.
func BackendNames() []string {
	names := make([]string, 0, len(backendFactories))
	for name := range backendFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
