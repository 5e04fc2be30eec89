package worldpay

import "strings"

// PaymentTypeAll disables payment-method masking on the hosted page.
const PaymentTypeAll = "ALL"

// paymentTypeCodes maps generic card-brand names (lower case) and Worldpay's
// own short codes (case-sensitive) to the masked payment-method code.
// See https://support.worldpay.com/support/kb/bg/customisingadvanced/custa9102.html
var paymentTypeCodes = map[string]string{
	"amex":        "AMEX-SSL",
	"dankort":     "DANKORT-SSL",
	"diners_club": "DINERS-SSL",
	"discover":    "DISCOVER-SSL",
	"jcb":         "JCB-SSL",
	"laser":       "LASER-SSL",
	"maestro":     "MAESTRO-SSL",
	"mastercard":  "ECMC-SSL",
	"switch":      "MAESTRO-SSL",
	"visa":        "VISA-SSL",
	"DINS":        "DINERS-SSL",  // Diners
	"LASR":        "LASER-SSL",   // Laser
	"MAES":        "MAESTRO-SSL", // Maestro
	"MSCD":        "ECMC-SSL",    // Mastercard
	"DMC":         "ECMC-SSL",    // Mastercard Debit
	"VISD":        "VISA-SSL",    // Visa Debit
	"VIED":        "VISA-SSL",    // Visa Electron
}

// MapPaymentType resolves a generic card brand or Worldpay payment type to the
// code used in the paymentMethodMask element.
//
// Resolution order: brand name (case-insensitive), then raw Worldpay short
// code, then input that is already a masked code minus its "-SSL" suffix.
// Anything else disables masking entirely; unknown input is never an error.
func MapPaymentType(input string) string {
	if code, ok := paymentTypeCodes[strings.ToLower(input)]; ok {
		return code
	}

	if code, ok := paymentTypeCodes[input]; ok {
		return code
	}

	suffixed := input + "-SSL"
	for _, code := range paymentTypeCodes {
		if code == suffixed {
			return suffixed
		}
	}

	return PaymentTypeAll
}
