package textfield

import "github.com/dmitrymomot/stuffkit/pkg/validator"

// Validator labels text for which Predicate returns true.
type Validator[L any] struct {
	Label     L
	Predicate func(text string) bool
}

// When is shorthand for a Validator literal.
func When[L any](label L, predicate func(text string) bool) Validator[L] {
	return Validator[L]{Label: label, Predicate: predicate}
}

// Chain is an ordered list of validators; the first match wins.
type Chain[L any] []Validator[L]

// Evaluate returns the label of the first validator whose predicate matches
// text. ok is false when none matches.
func Evaluate[L any](chain Chain[L], text string) (label L, ok bool) {
	for _, v := range chain {
		if v.Predicate(text) {
			return v.Label, true
		}
	}
	return label, false
}

// Evaluate is the method form of the package level Evaluate.
func (c Chain[L]) Evaluate(text string) (L, bool) {
	return Evaluate(c, text)
}

// FromRules turns validator rules into a chain labelled with their errors.
func FromRules(rules ...validator.Rule) Chain[validator.ValidationError] {
	chain := make(Chain[validator.ValidationError], 0, len(rules))
	for _, r := range rules {
		chain = append(chain, When(r.Error, r.Fails))
	}
	return chain
}

// Messages turns validator rules into a chain labelled with their messages.
func Messages(rules ...validator.Rule) Chain[string] {
	chain := make(Chain[string], 0, len(rules))
	for _, r := range rules {
		chain = append(chain, When(r.Error.Message, r.Fails))
	}
	return chain
}
