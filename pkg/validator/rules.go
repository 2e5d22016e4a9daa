package validator

import (
	"fmt"
	"regexp"
)

// Rule pairs a failure predicate with the error reported when it matches.
type Rule struct {
	Error ValidationError
	Fails Predicate
}

// Required fails on blank text.
func Required(field string) Rule {
	return Rule{
		Fails: Blank,
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLen fails on text shorter than min runes.
func MinLen(field string, min int) Rule {
	return Rule{
		Fails: ShorterThan(min),
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxLen fails on text longer than max runes.
func MaxLen(field string, max int) Rule {
	return Rule{
		Fails: LongerThan(max),
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// Pattern fails on text the expression does not match. It panics on an
// invalid expression, like regexp.MustCompile.
func Pattern(field, pattern, description string) Rule {
	re := regexp.MustCompile(pattern)
	return Rule{
		Fails: NotMatches(re),
		Error: ValidationError{
			Field:          field,
			Message:        description,
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": pattern,
			},
		},
	}
}

func Email(field string) Rule {
	return Rule{
		Fails: NotEmail,
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func Numeric(field string) Rule {
	return Rule{
		Fails: NotNumeric,
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only digits",
			TranslationKey: "validation.numeric",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Custom builds a rule from an arbitrary predicate and message.
func Custom(field, message string, fails Predicate) Rule {
	return Rule{
		Fails: fails,
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation.custom",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// WithMessage returns a copy of r reporting message instead of the default.
func (r Rule) WithMessage(message string) Rule {
	r.Error.Message = message
	return r
}
