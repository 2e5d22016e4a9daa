package textfield

import (
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrymomot/stuffkit/pkg/validator"
)

// Form groups named fields that share a label type.
type Form[L comparable] struct {
	mu     sync.RWMutex
	fields map[string]*Field[L]
	order  []string
}

func NewForm[L comparable]() *Form[L] {
	return &Form[L]{fields: make(map[string]*Field[L])}
}

// Add registers field under name.
func (f *Form[L]) Add(name string, field *Field[L]) error {
	if field == nil {
		return ErrNilField
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.fields[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateField, name)
	}
	f.fields[name] = field
	f.order = append(f.order, name)
	return nil
}

// Field returns the field registered under name.
func (f *Form[L]) Field(name string) (*Field[L], error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	field, ok := f.fields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFieldNotFound, name)
	}
	return field, nil
}

// Names returns field names in registration order.
func (f *Form[L]) Names() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return slices.Clone(f.order)
}

// HasErrors reports whether any field has an error.
func (f *Form[L]) HasErrors() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, field := range f.fields {
		if field.HasErrors() {
			return true
		}
	}
	return false
}

// Errors returns the current label of every field with an error.
func (f *Form[L]) Errors() map[string]L {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make(map[string]L)
	for name, field := range f.fields {
		if label, ok := field.CurrentError(); ok {
			out[name] = label
		}
	}
	return out
}

// ValidateForm collects the errors of a form labelled with validation errors,
// in field registration order. It returns nil when no field has an error.
func ValidateForm(f *Form[string]) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var errs validator.ValidationErrors
	for _, name := range f.order {
		if label, ok := f.fields[name].CurrentError(); ok {
			errs.Add(validator.ValidationError{
				Field:          name,
				Message:        label,
				TranslationKey: "validation.custom",
			})
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}
