package validator

import (
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Rule kinds understood by RuleSpec.
const (
	KindEmpty     = "empty"
	KindRequired  = "required"
	KindMinLength = "min_length"
	KindMaxLength = "max_length"
	KindPattern   = "pattern"
	KindEmail     = "email"
	KindNumeric   = "numeric"
)

// RuleSpec is the serialisable form of a Rule, as found in rule files and
// request bodies. Message overrides the default message when set.
type RuleSpec struct {
	Kind    string `yaml:"kind" json:"kind"`
	Message string `yaml:"message,omitempty" json:"message,omitempty"`
	Value   any    `yaml:"value,omitempty" json:"value,omitempty"`
}

// Rule builds the rule described by s for field.
func (s RuleSpec) Rule(field string) (Rule, error) {
	var rule Rule

	switch s.Kind {
	case KindEmpty:
		rule = Custom(field, "must not be empty", Empty)
		rule.Error.TranslationKey = "validation.required"
	case KindRequired:
		rule = Required(field)
	case KindMinLength, KindMaxLength:
		n, err := intValue(s.Value)
		if err != nil {
			return Rule{}, fmt.Errorf("%s: %w", s.Kind, err)
		}
		if s.Kind == KindMinLength {
			rule = MinLen(field, n)
		} else {
			rule = MaxLen(field, n)
		}
	case KindPattern:
		pattern, ok := s.Value.(string)
		if !ok || pattern == "" {
			return Rule{}, fmt.Errorf("%s: %w: expected a regular expression", s.Kind, ErrInvalidRuleValue)
		}
		if _, err := regexp.Compile(pattern); err != nil {
			return Rule{}, errors.Join(ErrInvalidRuleValue, err)
		}
		rule = Pattern(field, pattern, "has an invalid format")
	case KindEmail:
		rule = Email(field)
	case KindNumeric:
		rule = Numeric(field)
	default:
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownRuleKind, s.Kind)
	}

	if s.Message != "" {
		rule = rule.WithMessage(s.Message)
	}
	return rule, nil
}

// BuildRules converts specs into rules for field, keeping their order.
func BuildRules(field string, specs []RuleSpec) ([]Rule, error) {
	rules := make([]Rule, 0, len(specs))
	for i, s := range specs {
		rule, err := s.Rule(field)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// ParseRules decodes a YAML list of RuleSpec from r and builds rules for field.
func ParseRules(r io.Reader, field string) ([]Rule, error) {
	var specs []RuleSpec
	if err := yaml.NewDecoder(r).Decode(&specs); err != nil {
		if errors.Is(err, io.EOF) {
			return []Rule{}, nil
		}
		return nil, errors.Join(ErrInvalidRuleFile, err)
	}
	return BuildRules(field, specs)
}

func intValue(v any) (int, error) {
	switch n := v.(type) {
	case int:
		if n >= 0 {
			return n, nil
		}
	case int64:
		if n >= 0 && n <= math.MaxInt32 {
			return int(n), nil
		}
	case uint64:
		if n <= math.MaxInt32 {
			return int(n), nil
		}
	case float64:
		if n >= 0 && n == math.Trunc(n) && n <= math.MaxInt32 {
			return int(n), nil
		}
	}
	return 0, fmt.Errorf("%w: expected a non-negative integer, got %v", ErrInvalidRuleValue, v)
}
