// Package privacy provides helpers for reducing personal data before exposure.
package privacy

import "strings"

// FormatUserName maps a full display name to a privacy-reduced form, used whenever an
// owner's identity is shown to a party who may not be the owner themselves.
//
// "John Doe" becomes "John D.", "Jane Ann Smith" becomes "Jane S." (middle tokens are
// dropped), single-token names pass through unchanged, and an empty name yields nil.
// The result is computed per exposure and never stored.
func FormatUserName(name string) *string {
	if name == "" {
		return nil
	}

	parts := strings.Split(name, " ")
	if len(parts) == 1 {
		return &parts[0]
	}

	first := parts[0]
	last := parts[len(parts)-1]
	initial := ""
	if last != "" {
		initial = last[:1]
	}
	abbreviated := first + " " + initial + "."
	return &abbreviated
}
