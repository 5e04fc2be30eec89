package worldpay

import (
	"net/url"
	"strings"
)

// RedirectMethod is fixed for the hosted-page flow; a full interactive 3-D
// Secure challenge would form-post PaReq/TermUrl instead.
const RedirectMethod = "GET"

// RedirectURLBuilder derives the customer-facing hosted-page URL from a
// redirect reference reply. The return URLs are supplied by the caller; each
// is appended only when non-empty.
type RedirectURLBuilder struct {
	SuccessURL string
	FailureURL string
	CancelURL  string
}

// redirectParams lists the query parameters in the order the hosted page
// expects them. Worldpay distinguishes pending-vs-success and failure-vs-error
// server-side, while the client supplies one URL for each pair, hence the
// duplication.
func (b RedirectURLBuilder) redirectParams() [][2]string {
	return [][2]string{
		{"successURL", b.SuccessURL},
		{"pendingURL", b.SuccessURL},
		{"failureURL", b.FailureURL},
		{"errorURL", b.FailureURL},
		{"cancelURL", b.CancelURL},
	}
}

// BuildURL returns the reference token verbatim (it already carries the
// provider's OrderKey/Ticket query string) with the configured return URLs
// appended as percent-encoded parameters.
func (b RedirectURLBuilder) BuildURL(referenceToken string) string {
	var sb strings.Builder
	sb.WriteString(referenceToken)

	for _, param := range b.redirectParams() {
		if param[1] == "" {
			continue
		}
		sb.WriteByte('&')
		sb.WriteString(param[0])
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(param[1]))
	}

	return sb.String()
}

// RedirectData returns the hidden form fields for the redirect. The hosted
// flow needs none.
func (b RedirectURLBuilder) RedirectData() map[string]string {
	return map[string]string{}
}
