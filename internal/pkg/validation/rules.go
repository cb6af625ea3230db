package validation

import (
	"regexp"
	"unicode/utf8"
)

// Name length bounds for student and teacher first/last names.
const (
	NameMinLength = 3
	NameMaxLength = 32
)

// Violation reason codes, keyed by field name in the returned map.
const (
	ReasonSize        = "size"
	ReasonWhitespaces = "whitespaces"
)

var whitespacePattern = regexp.MustCompile(`^.*\s.*$`)

// Errors is a field-to-reason mapping of validation violations. It is
// inspected by the caller, who decides whether to proceed; it is not an
// error value in the Go sense.
type Errors map[string]string

// HasErrors reports whether any field failed validation.
func (e Errors) HasErrors() bool {
	return len(e) > 0
}

// validateName runs the length and whitespace rules for a single field and
// records violations under the field key. Length counts characters, not
// bytes, so multi-byte names measure the same as ASCII ones. Both rules run
// independently; when both fail, the whitespace reason overwrites the size
// reason because it runs second. The whitespace pattern's dot does not cross
// newlines, so a value whose only whitespace is spread across two or more
// newlines is not flagged.
func validateName(errors Errors, field, value string) {
	if n := utf8.RuneCountInString(value); n < NameMinLength || n > NameMaxLength {
		errors[field] = ReasonSize
	}
	if whitespacePattern.MatchString(value) {
		errors[field] = ReasonWhitespaces
	}
}

// ValidateNames checks a firstname/lastname pair and returns the accumulated
// violations. An empty map means both fields passed.
func ValidateNames(firstname, lastname string) Errors {
	errors := Errors{}
	validateName(errors, "firstname", firstname)
	validateName(errors, "lastname", lastname)
	return errors
}
