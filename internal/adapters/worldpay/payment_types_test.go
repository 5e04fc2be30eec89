package worldpay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapPaymentType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "brand mastercard", input: "mastercard", want: "ECMC-SSL"},
		{name: "brand mastercard mixed case", input: "MasterCard", want: "ECMC-SSL"},
		{name: "brand visa", input: "visa", want: "VISA-SSL"},
		{name: "brand amex", input: "amex", want: "AMEX-SSL"},
		{name: "brand diners club", input: "diners_club", want: "DINERS-SSL"},
		{name: "brand switch maps to maestro", input: "switch", want: "MAESTRO-SSL"},
		{name: "worldpay short code MSCD", input: "MSCD", want: "ECMC-SSL"},
		{name: "worldpay short code VIED", input: "VIED", want: "VISA-SSL"},
		{name: "worldpay short code VISD", input: "VISD", want: "VISA-SSL"},
		{name: "worldpay short code DMC", input: "DMC", want: "ECMC-SSL"},
		{name: "already a payment type without suffix", input: "ECMC", want: "ECMC-SSL"},
		{name: "already a payment type without suffix maestro", input: "MAESTRO", want: "MAESTRO-SSL"},
		{name: "unknown input disables masking", input: "Bitcoin", want: "ALL"},
		{name: "empty input disables masking", input: "", want: "ALL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapPaymentType(tt.input))
		})
	}
}
