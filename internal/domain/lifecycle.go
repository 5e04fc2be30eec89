package domain

import "strings"

// LifecycleStatus is the last-known payment event reported by Worldpay within
// an order status or notification.
type LifecycleStatus string

const (
	StatusAuthorised           LifecycleStatus = "AUTHORISED"
	StatusCaptured             LifecycleStatus = "CAPTURED"
	StatusSettledByMerchant    LifecycleStatus = "SETTLED_BY_MERCHANT"
	StatusSentForAuthorisation LifecycleStatus = "SENT_FOR_AUTHORISATION"
	StatusCancelled            LifecycleStatus = "CANCELLED"
	StatusRefused              LifecycleStatus = "REFUSED"
	StatusSentForRefund        LifecycleStatus = "SENT_FOR_REFUND"
	StatusRefunded             LifecycleStatus = "REFUNDED"
	StatusChargedBack          LifecycleStatus = "CHARGED_BACK"
	StatusExpired              LifecycleStatus = "EXPIRED"
)

// successStatuses are the last events that indicate the payment went through.
var successStatuses = map[LifecycleStatus]bool{
	StatusAuthorised:        true,
	StatusCaptured:          true,
	StatusSettledByMerchant: true,
}

// ParseLifecycleStatus normalises a raw last-event string. Comparison against
// the status sets is case-insensitive.
func ParseLifecycleStatus(raw string) LifecycleStatus {
	return LifecycleStatus(strings.ToUpper(strings.TrimSpace(raw)))
}

// IsSuccess reports whether the last event indicates a successful payment.
func (s LifecycleStatus) IsSuccess() bool {
	return successStatuses[s]
}

// IsPending reports whether the payment is still awaiting authorisation.
func (s LifecycleStatus) IsPending() bool {
	return s == StatusSentForAuthorisation
}

// IsCancelled reports whether the shopper cancelled the payment.
func (s LifecycleStatus) IsCancelled() bool {
	return s == StatusCancelled
}
