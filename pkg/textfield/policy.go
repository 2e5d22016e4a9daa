package textfield

// Policy computes the next error state from the full text after an edit.
// It receives the current state and returns the new one.
type Policy[L any] func(text string, current L, hasError bool) (L, bool)

// ChainPolicy replaces the error with the result of evaluating the chain.
func ChainPolicy[L any](validators ...Validator[L]) Policy[L] {
	chain := Chain[L](validators)
	return func(text string, _ L, _ bool) (L, bool) {
		return chain.Evaluate(text)
	}
}

// WhenPolicy sets label while predicate matches and clears it otherwise.
func WhenPolicy[L any](label L, predicate func(text string) bool) Policy[L] {
	return func(text string, _ L, _ bool) (L, bool) {
		if predicate(text) {
			return label, true
		}
		var none L
		return none, false
	}
}

// StickyWhenPolicy sets label when predicate matches and otherwise keeps
// whatever error the field already has.
func StickyWhenPolicy[L any](label L, predicate func(text string) bool) Policy[L] {
	return func(text string, current L, hasError bool) (L, bool) {
		if predicate(text) {
			return label, true
		}
		return current, hasError
	}
}

// FuncPolicy delegates to fn, which returns the label and whether there is an error.
func FuncPolicy[L any](fn func(text string) (L, bool)) Policy[L] {
	return func(text string, _ L, _ bool) (L, bool) {
		return fn(text)
	}
}

// ClearOnType clears the error on every edit regardless of the text.
func ClearOnType[L any]() Policy[L] {
	return func(string, L, bool) (L, bool) {
		var none L
		return none, false
	}
}
