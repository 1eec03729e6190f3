// Package suite binds every instance of the module to the law predicates
// of the classes it implements.
package suite

import (
	"errors"
	"fmt"

	"github.com/KasperOmsK/monadfn/laws"
)

// ErrUnknownSuite is returned by Lookup for a name with no suite.
var ErrUnknownSuite = errors.New("unknown suite")

// DefaultBound is the size bound used when none is configured.
const DefaultBound = 4

type builder func(bound int) laws.Suite

var builders = []struct {
	name  string
	build builder
}{
	{"option", optionSuite},
	{"seq", seqSuite},
	{"result", resultSuite},
	{"identity", identitySuite},
	{"writer", writerSuite},
	{"parser", parserSuite},
	{"store", storeSuite},
}

// Names lists the available suites in run order.
func Names() []string {
	out := make([]string, len(builders))
	for i, b := range builders {
		out[i] = b.name
	}
	return out
}

// All builds every suite. bound caps the size of generated structures:
// sequence lengths, log lengths, parser inputs and store probe ranges.
func All(bound int) []laws.Suite {
	suites, _ := Lookup(bound)
	return suites
}

// Lookup builds the named suites in the order given, or every suite when
// no name is given. A bound below 1 is replaced by DefaultBound.
func Lookup(bound int, names ...string) ([]laws.Suite, error) {
	if bound < 1 {
		bound = DefaultBound
	}
	if len(names) == 0 {
		names = Names()
	}

	out := make([]laws.Suite, 0, len(names))
	for _, name := range names {
		b, ok := find(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSuite, name)
		}
		out = append(out, b(bound))
	}
	return out, nil
}

func find(name string) (builder, bool) {
	for _, b := range builders {
		if b.name == name {
			return b.build, true
		}
	}
	return nil, false
}
