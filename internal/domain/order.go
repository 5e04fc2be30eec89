package domain

// Card holds the shopper record attached to a purchase. Card-data validation
// itself is owned by the caller; the request builder only reads these fields.
type Card struct {
	FirstName  string
	LastName   string
	Address1   string
	Address2   string
	PostalCode string
	City       string
	State      string
	Country    string
	Email      string
}

// Order describes one purchase attempt. TransactionID is caller-assigned and
// doubles as the idempotency/reconciliation key; the order is immutable once
// serialized into a request.
type Order struct {
	TransactionID string
	Amount        Amount
	Description   string
	PaymentType   string
	Card          *Card
	ClientIP      string
	AcceptHeader  string
	UserAgent     string
}

// ThreeDSecureContinuation carries the issuer authentication result back to
// Worldpay. Presence of PaResponse switches the request builder into
// continuation mode: no order, amount, card or address fields are emitted.
type ThreeDSecureContinuation struct {
	Session    string
	PaResponse string
	ClientIP   string
}

// AuthenticationContext holds the merchant-level credentials consumed by the
// request builder and gateway. Read-only to both.
type AuthenticationContext struct {
	Merchant     string
	Username     string
	Password     string
	Installation string
	TestMode     bool
}

// BasicAuthUsername returns the distinct basic-auth username if configured,
// falling back to the merchant code.
func (a AuthenticationContext) BasicAuthUsername() string {
	if a.Username != "" {
		return a.Username
	}
	return a.Merchant
}
