package nav

import (
	"fmt"
	"reflect"
)

// Case identifies one case of a sum type D whose payload is P.
//
// Sum types in this package are sealed interfaces; a nil interface value is
// "no destination". A Case knows how to build a D from a payload and how to
// pull the payload back out when (and only when) D holds that case.
type Case[D, P any] struct {
	name    string
	embed   func(P) D
	extract func(D) (P, bool)
}

func NewCase[D, P any](name string, embed func(P) D, extract func(D) (P, bool)) Case[D, P] {
	if embed == nil || extract == nil {
		panic(fmt.Sprintf("nav: case %q: embed and extract are required", name))
	}
	return Case[D, P]{name: name, embed: embed, extract: extract}
}

// CaseOf builds the case whose payload is the case type C itself, e.g. a
// payload-less BrowserLoading{}.
//
// It panics when C does not implement D. Go cannot express that constraint
// between two type parameters, so the check runs when the case is declared
// (package init for the cases in this package).
func CaseOf[D, C any](name string) Case[D, C] {
	var zero C
	if _, ok := any(zero).(D); !ok {
		panic(fmt.Sprintf("nav: case %q: %T is not a case of %s", name, zero, reflect.TypeFor[D]()))
	}
	return Case[D, C]{
		name:  name,
		embed: func(c C) D { return any(c).(D) },
		extract: func(d D) (C, bool) {
			c, ok := any(d).(C)
			return c, ok
		},
	}
}

func (c Case[D, P]) Name() string { return c.name }

func (c Case[D, P]) Embed(p P) D { return c.embed(p) }

func (c Case[D, P]) Extract(d D) (P, bool) { return c.extract(d) }

// Matches reports whether d currently holds this case.
func (c Case[D, P]) Matches(d D) bool {
	_, ok := c.extract(d)
	return ok
}
