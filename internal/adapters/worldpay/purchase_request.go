package worldpay

import (
	"encoding/xml"
	"strconv"

	"github.com/kevin07696/worldpay-gateway/internal/domain"
)

// APIVersion is the paymentService schema version this adapter speaks.
const APIVersion = "1.4"

// defaultDescription is used when the caller gives no order description.
const defaultDescription = "Merchandise"

// RequestDocument is the in-memory form of an outbound paymentService request.
// Exactly one of the full-order branch or the 3-DS continuation branch is
// present under the order element.
type RequestDocument struct {
	XMLName      xml.Name      `xml:"paymentService"`
	Version      string        `xml:"version,attr"`
	MerchantCode string        `xml:"merchantCode,attr"`
	Submit       submitElement `xml:"submit"`
}

type submitElement struct {
	Order orderElement `xml:"order"`
}

type orderElement struct {
	OrderCode         string                 `xml:"orderCode,attr,omitempty"`
	InstallationID    string                 `xml:"installationId,attr,omitempty"`
	Description       string                 `xml:"description,omitempty"`
	Amount            *amountElement         `xml:"amount"`
	PaymentMethodMask *paymentMethodMask     `xml:"paymentMethodMask"`
	Shopper           *shopperElement        `xml:"shopper"`
	BillingAddress    *billingAddressElement `xml:"billingAddress"`
	Session           *sessionElement        `xml:"session"`
	Info3DSecure      *info3DSecureElement   `xml:"info3DSecure"`
}

type amountElement struct {
	Value        string `xml:"value,attr"`
	CurrencyCode string `xml:"currencyCode,attr"`
	Exponent     string `xml:"exponent,attr"`
}

type paymentMethodMask struct {
	Include includeElement `xml:"include"`
}

type includeElement struct {
	Code string `xml:"code,attr"`
}

type shopperElement struct {
	Email   string         `xml:"shopperEmailAddress,omitempty"`
	Browser browserElement `xml:"browser"`
}

type browserElement struct {
	AcceptHeader    string `xml:"acceptHeader"`
	UserAgentHeader string `xml:"userAgentHeader"`
}

type billingAddressElement struct {
	Address addressElement `xml:"address"`
}

type addressElement struct {
	FirstName   string `xml:"firstName"`
	LastName    string `xml:"lastName"`
	Address1    string `xml:"address1"`
	Address2    string `xml:"address2"`
	PostalCode  string `xml:"postalCode"`
	City        string `xml:"city"`
	State       string `xml:"state"`
	CountryCode string `xml:"countryCode"`
}

// sessionElement must be present on a continuation even when the id is empty,
// but the schema rejects an empty id attribute, so callers must supply one.
type sessionElement struct {
	ShopperIPAddress string `xml:"shopperIPAddress,attr"`
	ID               string `xml:"id,attr"`
}

type info3DSecureElement struct {
	PaResponse string `xml:"paResponse"`
}

// PurchaseRequest assembles outbound authorization requests. A non-empty
// PA-response on ThreeDSecure switches the builder into continuation mode.
type PurchaseRequest struct {
	Auth              domain.AuthenticationContext
	Order             domain.Order
	ThreeDSecure      *domain.ThreeDSecureContinuation
	UseBillingAddress bool
}

// NewPurchaseRequest creates a builder for the given order. Billing-address
// usage defaults to enabled, matching the gateway's hosted-page requirements.
func NewPurchaseRequest(auth domain.AuthenticationContext, order domain.Order) *PurchaseRequest {
	return &PurchaseRequest{
		Auth:              auth,
		Order:             order,
		UseBillingAddress: true,
	}
}

// Build validates the order and produces the request document. It fails with
// REQUEST_INVALID when the amount is missing and CARD_DATA_INVALID when the
// shopper record is absent or lacks a postal code while a billing address is
// required. No document is returned on failure.
func (r *PurchaseRequest) Build() (*RequestDocument, error) {
	if r.Order.Amount.IsZero() {
		return nil, domain.ErrAmountRequired
	}

	doc := &RequestDocument{
		Version:      APIVersion,
		MerchantCode: r.Auth.Merchant,
	}

	if r.ThreeDSecure != nil && r.ThreeDSecure.PaResponse != "" {
		doc.Submit.Order = r.buildContinuationOrder()
		return doc, nil
	}

	order, err := r.buildFullOrder()
	if err != nil {
		return nil, err
	}
	doc.Submit.Order = order

	return doc, nil
}

// buildFullOrder emits the initial-purchase branch: order code, amount,
// payment-method mask, shopper and (when enabled) the billing address.
func (r *PurchaseRequest) buildFullOrder() (orderElement, error) {
	card := r.Order.Card
	if card == nil {
		return orderElement{}, domain.ErrCardDataMissing
	}
	if r.UseBillingAddress && card.PostalCode == "" {
		return orderElement{}, domain.ErrBillingAddressRequired
	}

	description := r.Order.Description
	if description == "" {
		description = defaultDescription
	}

	order := orderElement{
		OrderCode:      r.Order.TransactionID,
		InstallationID: r.Auth.Installation,
		Description:    description,
		Amount: &amountElement{
			Value:        strconv.FormatInt(r.Order.Amount.MinorUnits(), 10),
			CurrencyCode: r.Order.Amount.Currency,
			Exponent:     strconv.Itoa(r.Order.Amount.Exponent()),
		},
		PaymentMethodMask: &paymentMethodMask{
			Include: includeElement{Code: MapPaymentType(r.Order.PaymentType)},
		},
		Shopper: &shopperElement{
			Email: card.Email,
			Browser: browserElement{
				AcceptHeader:    r.Order.AcceptHeader,
				UserAgentHeader: r.Order.UserAgent,
			},
		},
	}

	if r.UseBillingAddress {
		order.BillingAddress = &billingAddressElement{
			Address: addressElement{
				FirstName:   card.FirstName,
				LastName:    card.LastName,
				Address1:    card.Address1,
				Address2:    card.Address2,
				PostalCode:  card.PostalCode,
				City:        card.City,
				State:       card.State,
				CountryCode: card.Country,
			},
		}
	}

	return order, nil
}

// buildContinuationOrder emits only session and info3DSecure; the rest of the
// order was already submitted in the initial request.
func (r *PurchaseRequest) buildContinuationOrder() orderElement {
	return orderElement{
		Session: &sessionElement{
			ShopperIPAddress: r.ThreeDSecure.ClientIP,
			ID:               r.ThreeDSecure.Session,
		},
		Info3DSecure: &info3DSecureElement{
			PaResponse: r.ThreeDSecure.PaResponse,
		},
	}
}
