package worldpay

import (
	"strconv"

	"github.com/kevin07696/worldpay-gateway/internal/domain"
)

// ResponseKind identifies which of the four document shapes a parsed body
// turned out to be. Exactly one applies per document.
type ResponseKind int

const (
	// KindOrderStatus is a completed (or in-flight) order status reply.
	KindOrderStatus ResponseKind = iota
	// KindRedirectReference is a hosted-page initiation reply awaiting
	// customer action.
	KindRedirectReference
	// KindNotificationEvent is an asynchronous orderStatusEvent.
	KindNotificationEvent
	// KindTopLevelError is a reply carrying only an error element.
	KindTopLevelError
)

// Response is a normalized view over a parsed reply or notification. The
// variant is resolved once at parse time; all status queries are pure reads,
// so parsing the same body twice always yields identical results.
type Response struct {
	wrapper *Element
	order   *Element
	kind    ResponseKind
}

// ParseResponse deserializes a response or notification body into a Response.
func ParseResponse(body []byte) (*Response, error) {
	wrapper, err := Deserialize(body)
	if err != nil {
		return nil, err
	}
	return newResponse(wrapper), nil
}

func newResponse(wrapper *Element) *Response {
	r := &Response{wrapper: wrapper, kind: KindTopLevelError}

	if order := wrapper.Child("orderStatus"); order != nil {
		r.order = order
		r.kind = KindOrderStatus
		if order.Child("reference") != nil {
			r.kind = KindRedirectReference
		}
	} else if event := wrapper.Child("orderStatusEvent"); event != nil {
		r.order = event
		r.kind = KindNotificationEvent
	}

	return r
}

// Kind returns the resolved document shape.
func (r *Response) Kind() ResponseKind {
	return r.kind
}

// TransactionID returns the caller-assigned order code carried on the
// orderStatus/orderStatusEvent element, or "" if absent.
func (r *Response) TransactionID() string {
	return r.order.Attr("orderCode")
}

// TransactionReference returns Worldpay's own reference id, or "" if absent.
func (r *Response) TransactionReference() string {
	return r.order.Child("reference").Attr("id")
}

// RedirectReference returns the hosted-page reference token content.
func (r *Response) RedirectReference() string {
	if ref := r.order.Child("reference"); ref != nil {
		return ref.Text
	}
	return ""
}

// IsRedirect reports whether this reply initiates a hosted-page flow rather
// than carrying a completed result.
func (r *Response) IsRedirect() bool {
	return r.order.Child("reference") != nil
}

// Status returns the raw last lifecycle event, or "" when none is present.
func (r *Response) Status() string {
	if event := r.order.Find("payment", "lastEvent"); event != nil {
		return event.Text
	}
	return ""
}

// HasStatus reports whether a lifecycle event is present.
func (r *Response) HasStatus() bool {
	return r.Status() != ""
}

func (r *Response) lastEvent() domain.LifecycleStatus {
	return domain.ParseLifecycleStatus(r.Status())
}

// IsSuccessful reports whether the last event indicates a successful payment.
func (r *Response) IsSuccessful() bool {
	return r.HasStatus() && r.lastEvent().IsSuccess()
}

// IsPending reports whether the payment is awaiting authorisation.
func (r *Response) IsPending() bool {
	return r.HasStatus() && r.lastEvent().IsPending()
}

// IsCancelled reports whether the shopper cancelled the payment.
func (r *Response) IsCancelled() bool {
	return r.HasStatus() && r.lastEvent().IsCancelled()
}

// CardType returns the Worldpay payment-method code used (e.g. "ECMC-SSL"),
// or "" if not present.
func (r *Response) CardType() string {
	if method := r.order.Find("payment", "paymentMethod"); method != nil {
		return method.Text
	}
	return ""
}

func (r *Response) errorElement() *Element {
	if errElem := r.wrapper.Child("error"); errElem != nil {
		return errElem
	}
	return r.order.Child("error")
}

// ErrorCode returns the error element's code attribute, or "" when there is
// no error element or it carries no code.
func (r *Response) ErrorCode() string {
	return r.errorElement().Attr("code")
}

// Message returns human-readable status text: the error text when an error
// element exists, else the ISO-8583 return-code text, else "AUTHORISED" for
// successful payments and "PENDING" otherwise. A provider error is a normal
// parsed outcome here, never a Go error.
func (r *Response) Message() string {
	if errElem := r.errorElement(); errElem != nil {
		return "ERROR: " + errElem.Text
	}

	if returnCode := r.order.Find("payment", "ISO8583ReturnCode"); returnCode != nil {
		if code, err := strconv.Atoi(returnCode.Attr("code")); err == nil {
			if msg, ok := ISO8583Message(code); ok {
				return msg
			}
		}
	}

	if r.IsSuccessful() {
		return "AUTHORISED"
	}

	return "PENDING"
}
