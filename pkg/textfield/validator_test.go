package textfield_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/stuffkit/pkg/textfield"
	"github.com/dmitrymomot/stuffkit/pkg/validator"
)

func lengthChain() textfield.Chain[string] {
	return textfield.Chain[string]{
		textfield.When("String cannot be empty", validator.Empty),
		textfield.When("Length must be at least 14", validator.ShorterThan(14)),
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		wantLabel string
		wantOK    bool
	}{
		{"empty text hits first validator", "", "String cannot be empty", true},
		{"short text hits second validator", "hello", "Length must be at least 14", true},
		{"long text passes", "hellohellohello", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			label, ok := textfield.Evaluate(lengthChain(), tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestEvaluate_FirstMatchWins(t *testing.T) {
	t.Parallel()

	calls := 0
	counting := func(string) bool {
		calls++
		return true
	}

	chain := textfield.Chain[int]{
		textfield.When(1, func(string) bool { return false }),
		textfield.When(2, counting),
		textfield.When(3, counting),
	}

	label, ok := chain.Evaluate("anything")
	assert.True(t, ok)
	assert.Equal(t, 2, label)
	assert.Equal(t, 1, calls, "validators after the first match must not run")

	label, ok = textfield.Evaluate(textfield.Chain[int]{}, "anything")
	assert.False(t, ok)
	assert.Zero(t, label)
}

func TestEvaluate_PredicatePanicPropagates(t *testing.T) {
	t.Parallel()

	chain := textfield.Chain[string]{
		textfield.When("boom", func(string) bool { panic("predicate failed") }),
	}
	assert.PanicsWithValue(t, "predicate failed", func() { chain.Evaluate("x") })
}

func TestFromRules(t *testing.T) {
	t.Parallel()

	chain := textfield.FromRules(
		validator.Required("email"),
		validator.Email("email"),
	)

	label, ok := chain.Evaluate("  ")
	assert.True(t, ok)
	assert.Equal(t, "validation.required", label.TranslationKey)

	label, ok = chain.Evaluate("not-an-email")
	assert.True(t, ok)
	assert.Equal(t, "validation.email", label.TranslationKey)

	_, ok = chain.Evaluate("user@example.com")
	assert.False(t, ok)

	messages := textfield.Messages(validator.MinLen("name", 2))
	msg, ok := messages.Evaluate("a")
	assert.True(t, ok)
	assert.Equal(t, "must be at least 2 characters long", msg)
}
