package worldpay

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin07696/worldpay-gateway/internal/domain"
)

// mockHTTPClient captures the outbound request and returns a canned response.
type mockHTTPClient struct {
	lastRequest *http.Request
	lastBody    []byte
	status      int
	response    string
	err         error
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.lastRequest = req
	if req.Body != nil {
		m.lastBody, _ = io.ReadAll(req.Body)
	}
	if m.err != nil {
		return nil, m.err
	}
	status := m.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(m.response))),
	}, nil
}

func TestPurchaseSubmitsRequest(t *testing.T) {
	client := &mockHTTPClient{response: redirectReplyXML}
	gw := NewGateway(testAuth(), true, client, nil)

	resp, err := gw.Purchase(context.Background(), testOrder(t))
	require.NoError(t, err)

	assert.True(t, resp.IsRedirect())
	assert.Equal(t, "T123", resp.TransactionID())

	req := client.lastRequest
	require.NotNil(t, req)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "https://secure-test.worldpay.com/jsp/merchant/xml/paymentService.jsp", req.URL.String())
	assert.Equal(t, "text/xml; charset=utf-8", req.Header.Get("Content-Type"))

	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("MYMERCHANT:secret"))
	assert.Equal(t, wantAuth, req.Header.Get("Authorization"))

	body := string(client.lastBody)
	assert.Contains(t, body, "<!DOCTYPE paymentService PUBLIC")
	assert.Contains(t, body, `orderCode="T123"`)
}

func TestPurchaseUsesDistinctUsername(t *testing.T) {
	auth := testAuth()
	auth.Username = "XMLUSER"

	client := &mockHTTPClient{response: redirectReplyXML}
	gw := NewGateway(auth, true, client, nil)

	_, err := gw.Purchase(context.Background(), testOrder(t))
	require.NoError(t, err)

	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("XMLUSER:secret"))
	assert.Equal(t, wantAuth, client.lastRequest.Header.Get("Authorization"))
}

func TestPurchaseLiveEndpoint(t *testing.T) {
	auth := testAuth()
	auth.TestMode = false

	client := &mockHTTPClient{response: redirectReplyXML}
	gw := NewGateway(auth, true, client, nil)

	_, err := gw.Purchase(context.Background(), testOrder(t))
	require.NoError(t, err)

	assert.Equal(t, "https://secure.worldpay.com/jsp/merchant/xml/paymentService.jsp", client.lastRequest.URL.String())
}

func TestPurchaseGeneratesOrderCode(t *testing.T) {
	client := &mockHTTPClient{response: redirectReplyXML}
	gw := NewGateway(testAuth(), true, client, nil)

	order := testOrder(t)
	order.TransactionID = ""

	_, err := gw.Purchase(context.Background(), order)
	require.NoError(t, err)

	assert.Contains(t, string(client.lastBody), "orderCode=")
	assert.NotContains(t, string(client.lastBody), `orderCode=""`)
}

func TestPurchaseBuildFailureDoesNotSend(t *testing.T) {
	client := &mockHTTPClient{response: redirectReplyXML}
	gw := NewGateway(testAuth(), true, client, nil)

	order := testOrder(t)
	order.Card = nil

	_, err := gw.Purchase(context.Background(), order)
	assert.True(t, domain.IsDomainError(err, domain.ErrorCodeCardDataInvalid))
	assert.Nil(t, client.lastRequest, "no partial request may reach the wire")
}

func TestPurchaseTransportError(t *testing.T) {
	client := &mockHTTPClient{err: errors.New("connection refused")}
	gw := NewGateway(testAuth(), true, client, nil)

	_, err := gw.Purchase(context.Background(), testOrder(t))
	assert.True(t, domain.IsDomainError(err, domain.ErrorCodeGatewayError))
}

func TestPurchaseMalformedReply(t *testing.T) {
	client := &mockHTTPClient{response: "<html>gateway busy</html>"}
	gw := NewGateway(testAuth(), true, client, nil)

	_, err := gw.Purchase(context.Background(), testOrder(t))
	assert.True(t, domain.IsDomainError(err, domain.ErrorCodeResponseMalformed))
}

func TestPurchaseProviderErrorIsNotAnError(t *testing.T) {
	client := &mockHTTPClient{response: errorReplyXML}
	gw := NewGateway(testAuth(), true, client, nil)

	resp, err := gw.Purchase(context.Background(), testOrder(t))
	require.NoError(t, err, "a declined or rejected order is a parsed outcome, not a fault")

	assert.Equal(t, "ERROR: Duplicate Order", resp.Message())
	assert.Equal(t, "5", resp.ErrorCode())
}

func TestContinue3DSecure(t *testing.T) {
	reply := `<paymentService><reply><orderStatus orderCode="T123"><payment><lastEvent>AUTHORISED</lastEvent></payment></orderStatus></reply></paymentService>`
	client := &mockHTTPClient{response: reply}
	gw := NewGateway(testAuth(), true, client, nil)

	resp, err := gw.Continue3DSecure(context.Background(), testOrder(t), domain.ThreeDSecureContinuation{
		Session:    "SESSION-1",
		PaResponse: "pares-blob",
		ClientIP:   "203.0.113.7",
	})
	require.NoError(t, err)

	assert.True(t, resp.IsSuccessful())

	body := string(client.lastBody)
	assert.Contains(t, body, "<info3DSecure><paResponse>pares-blob</paResponse></info3DSecure>")
	assert.Contains(t, body, `shopperIPAddress="203.0.113.7"`)
	assert.NotContains(t, body, "<amount")
	assert.NotContains(t, body, "<billingAddress>")
}
