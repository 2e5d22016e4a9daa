package textfield

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/stuffkit/pkg/logger"
)

// State is the error state of a field.
type State string

const (
	StateNoError State = "no_error"
	StateError   State = "error"
)

func (s State) Name() string {
	return string(s)
}

// Field holds the current error of a text input and recomputes it on every
// text change. Whether there is an error is tracked apart from the label, so
// the zero label is a valid error.
type Field[L comparable] struct {
	mu        sync.RWMutex
	policy    Policy[L]
	label     L
	hasError  bool
	text      string
	name      string
	renderers []Renderer[L]
	log       *slog.Logger
	initial   *string
}

// New creates a field driven by policy. A nil policy never reports errors.
func New[L comparable](policy Policy[L], opts ...Option[L]) *Field[L] {
	if policy == nil {
		policy = ClearOnType[L]()
	}

	f := &Field[L]{
		policy: policy,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.initial != nil {
		f.OnTextChanged(*f.initial)
		f.initial = nil
	}

	return f
}

// OnTextChanged applies the policy to the full current text.
func (f *Field[L]) OnTextChanged(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.text = text
	label, hasError := f.policy(text, f.label, f.hasError)
	f.setLocked(label, hasError)
}

// SetError sets label directly, bypassing the policy.
func (f *Field[L]) SetError(label L) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.setLocked(label, true)
}

// ClearError removes any current error.
func (f *Field[L]) ClearError() {
	f.mu.Lock()
	defer f.mu.Unlock()

	var none L
	f.setLocked(none, false)
}

// SetMessage sets msg as the error of a message field, or clears the error
// when msg is empty.
func SetMessage(f *Field[string], msg string) {
	if msg == "" {
		f.ClearError()
		return
	}
	f.SetError(msg)
}

// CurrentError returns the current label and whether there is an error.
func (f *Field[L]) CurrentError() (L, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.label, f.hasError
}

// HasErrors reports whether the field currently has an error.
func (f *Field[L]) HasErrors() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.hasError
}

// State returns StateError or StateNoError.
func (f *Field[L]) State() State {
	if f.HasErrors() {
		return StateError
	}
	return StateNoError
}

// Text returns the text passed to the last OnTextChanged call.
func (f *Field[L]) Text() string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.text
}

func (f *Field[L]) setLocked(label L, hasError bool) {
	if !hasError {
		var none L
		label = none
	}

	if label == f.label && hasError == f.hasError {
		return
	}

	f.label = label
	f.hasError = hasError

	f.log.Debug("text field error changed",
		logger.Component("textfield"),
		slog.String("field", f.name),
		slog.String("state", f.stateLocked().Name()),
		logger.Label(label),
	)

	for _, r := range f.renderers {
		r(label, hasError)
	}
}

func (f *Field[L]) stateLocked() State {
	if f.hasError {
		return StateError
	}
	return StateNoError
}
