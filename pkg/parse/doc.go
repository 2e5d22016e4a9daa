// Package parse holds small conversions between strings and values: enum
// lookup by name and hexadecimal formatting of integers.
package parse
