package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAccountID(t *testing.T) {
	tests := []struct {
		name string
		memo string
		want string
	}{
		{"austrian iban", "Miete Jänner AT611904300234573201 Hausverwaltung", "AT611904300234573201"},
		{"german iban", "DE89370400440532013000 Gehalt", "DE89370400440532013000"},
		{"first match wins", "AT611904300234573201 DE89370400440532013000", "AT611904300234573201"},
		{"lowercase prefix", "at611904300234573201", "at611904300234573201"},
		{"trailing characters are capped", "GB29NWBK60161331926819ABCDEFGHIJKLMNOPQRS", "GB29NWBK60161331926819ABCDEFGHI"},
		{"too short", "AT6119043002", ""},
		{"no identifier", "Payment to BILLA Supermarket", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractAccountID(tt.memo))
		})
	}
}
