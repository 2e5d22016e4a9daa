package validator

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Predicate reports whether text is erroneous.
type Predicate func(text string) bool

var numericRegex = regexp.MustCompile(`^[0-9]+$`)

// Empty matches the empty string.
func Empty(text string) bool { return text == "" }

// Blank matches strings that are empty after trimming whitespace.
func Blank(text string) bool { return strings.TrimSpace(text) == "" }

// ShorterThan matches text with fewer than n runes.
func ShorterThan(n int) Predicate {
	return func(text string) bool {
		return utf8.RuneCountInString(text) < n
	}
}

// LongerThan matches text with more than n runes.
func LongerThan(n int) Predicate {
	return func(text string) bool {
		return utf8.RuneCountInString(text) > n
	}
}

// Matches matches text the expression finds a match in.
func Matches(re *regexp.Regexp) Predicate {
	return re.MatchString
}

// NotMatches matches text the expression finds no match in.
func NotMatches(re *regexp.Regexp) Predicate {
	return func(text string) bool {
		return !re.MatchString(text)
	}
}

// NotEmail matches text that is not a bare email address with a dotted domain.
func NotEmail(text string) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}

	addr, err := mail.ParseAddress(text)
	if err != nil || addr.Address != text {
		return true
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return true
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return true
		}
	}
	return !strings.Contains(domain, ".")
}

// NotNumeric matches text that is not a non-empty run of ASCII digits.
func NotNumeric(text string) bool {
	return !numericRegex.MatchString(text)
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return func(text string) bool { return !p(text) }
}

// AnyOf matches when at least one predicate matches.
func AnyOf(ps ...Predicate) Predicate {
	return func(text string) bool {
		for _, p := range ps {
			if p(text) {
				return true
			}
		}
		return false
	}
}

// AllOf matches when every predicate matches. With no predicates it never matches.
func AllOf(ps ...Predicate) Predicate {
	return func(text string) bool {
		if len(ps) == 0 {
			return false
		}
		for _, p := range ps {
			if !p(text) {
				return false
			}
		}
		return true
	}
}
