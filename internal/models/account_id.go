package models

import "regexp"

// accountIDPattern matches an IBAN-shaped identifier: country prefix, check
// digits, bank code, seven digits and up to sixteen trailing characters.
var accountIDPattern = regexp.MustCompile(`[a-zA-Z]{2}[0-9]{2}[a-zA-Z0-9]{4}[0-9]{7}([a-zA-Z0-9]?){0,16}`)

// ExtractAccountID returns the first IBAN-shaped identifier found anywhere in
// text, or "" when there is none
func ExtractAccountID(text string) string {
	return accountIDPattern.FindString(text)
}
