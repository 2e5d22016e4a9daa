package textfield

import "log/slog"

// Renderer is notified whenever the error of a field changes.
type Renderer[L any] func(label L, hasError bool)

// Option configures a Field.
type Option[L comparable] func(*Field[L])

// WithInitialText runs the policy once on text when the field is created,
// so a field bound to an empty input can start in the error state.
func WithInitialText[L comparable](text string) Option[L] {
	return func(f *Field[L]) {
		f.initial = &text
	}
}

// WithRenderer registers a callback for error changes. Nil renderers are ignored.
func WithRenderer[L comparable](r Renderer[L]) Option[L] {
	return func(f *Field[L]) {
		if r != nil {
			f.renderers = append(f.renderers, r)
		}
	}
}

// WithLogger logs error transitions at debug level.
func WithLogger[L comparable](l *slog.Logger) Option[L] {
	return func(f *Field[L]) {
		if l != nil {
			f.log = l
		}
	}
}

// WithName names the field in log records.
func WithName[L comparable](name string) Option[L] {
	return func(f *Field[L]) {
		f.name = name
	}
}
