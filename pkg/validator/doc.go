// Package validator provides text predicates and labelled rules used to decide
// whether a piece of user input is erroneous.
//
// A Predicate answers "is this text wrong?" and returns true when it is. Rules
// pair a predicate with a ValidationError describing the failure, including a
// translation key so the message can be localised by the caller. Rules are
// meant to be evaluated in order, first failure wins; the textfield package
// builds its validator chains from them.
//
// # Usage
//
//	rules := []validator.Rule{
//	    validator.Required("username"),
//	    validator.MinLen("username", 3),
//	    validator.Pattern("username", `^[a-z0-9_]+$`, "only lowercase letters, digits and underscores"),
//	}
//	if err := validator.Apply("Bob", rules...); err != nil {
//	    verrs := validator.ExtractValidationErrors(err)
//	    // verrs.Get("username") == []string{"only lowercase letters, digits and underscores"}
//	}
//
// Rules can also be loaded from YAML with ParseRules:
//
//	- kind: required
//	  message: String cannot be empty
//	- kind: min_length
//	  value: 14
//	  message: Length must be at least 14
//
// # Error Handling
//
// ValidationErrors implements the error interface, so callers can use
// errors.As (or ExtractValidationErrors) to get field level details back.
// Predicates never fail: every string, including the empty one, gets an answer.
package validator
