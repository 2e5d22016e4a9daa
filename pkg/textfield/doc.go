// Package textfield keeps the "current error" of a text input in sync with
// its content.
//
// A Validator pairs a label (usually an error message) with a predicate over
// the text. A Chain is an ordered list of validators evaluated first to last;
// the first predicate that matches decides the label, and no match means no
// error. Evaluate is a pure function of the chain and the text.
//
// Field wraps a Policy (the transition function) and holds the current error.
// The surrounding UI calls OnTextChanged on every edit with the full text and
// reads CurrentError or HasErrors back to render it, or registers a Renderer that is
// invoked whenever the error changes.
//
//	name := textfield.New(textfield.ChainPolicy(
//	    textfield.When("String cannot be empty", validator.Empty),
//	    textfield.When("Length must be at least 14", validator.ShorterThan(14)),
//	), textfield.WithInitialText[string](""))
//
//	name.HasErrors()                  // true
//	name.OnTextChanged("hellohellohello")
//	name.HasErrors()                  // false
//
// # Policies
//
//   - ChainPolicy: first matching validator of a chain, replacing the previous error.
//   - WhenPolicy: a single label that is set when the predicate matches and cleared otherwise.
//   - StickyWhenPolicy: sets the label when the predicate matches, leaves the state alone otherwise.
//   - FuncPolicy: an arbitrary function returning a label or none.
//   - ClearOnType: any edit clears the error.
//
// The policy is fixed when the Field is created.
//
// # Concurrency
//
// Field guards its state with a mutex, so OnTextChanged and HasErrors may be
// called from different goroutines. Renderer callbacks run synchronously while
// the field is locked and must not call back into the same field.
package textfield
