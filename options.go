package loxt

import (
	"fmt"

	"github.com/KimNorgaard/go-loxt/errors"
)

// OverflowPolicy decides what happens to a number literal that does not
// fit in 64 bits.
type OverflowPolicy uint8

const (
	// OverflowReject turns the literal into an Error token.
	OverflowReject OverflowPolicy = iota
	// OverflowSaturate stores math.MaxUint64.
	OverflowSaturate
	// OverflowWrap stores the value modulo 2^64.
	OverflowWrap
)

var policyNames = [...]string{
	OverflowReject:   "reject",
	OverflowSaturate: "saturate",
	OverflowWrap:     "wrap",
}

func (p OverflowPolicy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("OverflowPolicy(%d)", p)
}

// Set parses a policy name, so that *OverflowPolicy satisfies flag.Value.
func (p *OverflowPolicy) Set(s string) error {
	for i, name := range policyNames {
		if name == s {
			*p = OverflowPolicy(i)
			return nil
		}
	}
	return fmt.Errorf("loxt: unknown overflow policy %q", s)
}

type options struct {
	reporter errors.Reporter
	overflow OverflowPolicy
}

// Option configures a call to Lex.
type Option func(*options)

// WithReporter returns an Option that sends every lexical error to r as it
// is detected. Errors are recorded in the TokenList regardless. A nil r
// discards reports.
func WithReporter(r errors.Reporter) Option {
	return func(o *options) {
		if r == nil {
			r = errors.Discard
		}
		o.reporter = r
	}
}

// WithOverflowPolicy returns an Option that sets how number literals
// larger than math.MaxUint64 are handled. The default is OverflowReject.
// Unknown policies are ignored.
func WithOverflowPolicy(p OverflowPolicy) Option {
	return func(o *options) {
		if int(p) < len(policyNames) {
			o.overflow = p
		}
	}
}
