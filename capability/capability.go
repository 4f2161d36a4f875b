// Package capability gates startup on the extensions the GPU context advertises.
package capability

import (
	"fmt"
	"sort"
	"strings"

	"github.com/richinsley/goattractor/graphics"
)

// ExtensionSource enumerates the extension strings of the current context.
type ExtensionSource interface {
	Extensions() []string
}

// Set is an immutable set of extension names.
type Set struct {
	names map[string]struct{}
}

// NewSet builds a Set from a list of names. Duplicates and empty strings are dropped.
func NewSet(names ...string) Set {
	s := Set{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if n == "" {
			continue
		}
		s.names[n] = struct{}{}
	}
	return s
}

// Probe enumerates every extension exposed by src.
func Probe(src ExtensionSource) Set {
	return NewSet(src.Extensions()...)
}

func (s Set) Has(name string) bool {
	_, ok := s.names[name]
	return ok
}

func (s Set) Len() int { return len(s.names) }

// Subset returns the members of s that appear in names.
func (s Set) Subset(names ...string) Set {
	out := Set{names: make(map[string]struct{})}
	for _, n := range names {
		if s.Has(n) {
			out.names[n] = struct{}{}
		}
	}
	return out
}

// Names returns the members in sorted order.
func (s Set) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// RequireAll fails with graphics.ErrUnsupportedHardware when any of required
// is missing from s. Every missing name is listed in the error.
func RequireAll(s Set, required []string) error {
	var missing []string
	for _, r := range required {
		if !s.Has(r) {
			missing = append(missing, r)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: missing %s", graphics.ErrUnsupportedHardware, strings.Join(missing, ", "))
}
