package worldpay

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kevin07696/worldpay-gateway/internal/domain"
	"github.com/kevin07696/worldpay-gateway/internal/domain/ports"
	"github.com/kevin07696/worldpay-gateway/pkg/observability"
)

const (
	apiHostLive = "https://secure.worldpay.com"
	apiHostTest = "https://secure-test.worldpay.com"
	apiPath     = "/jsp/merchant/xml/paymentService.jsp"
)

// Gateway submits paymentService documents to Worldpay and parses the
// synchronous replies. Transport concerns beyond one POST (retries, TLS
// tuning) belong to the injected HTTP client.
type Gateway struct {
	auth              domain.AuthenticationContext
	useBillingAddress bool
	httpClient        ports.HTTPClient
	logger            *zap.Logger
}

// NewGateway creates a gateway client. A nil httpClient gets a default client
// with a 30 second timeout.
func NewGateway(auth domain.AuthenticationContext, useBillingAddress bool, httpClient ports.HTTPClient, logger *zap.Logger) *Gateway {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		auth:              auth,
		useBillingAddress: useBillingAddress,
		httpClient:        httpClient,
		logger:            logger,
	}
}

// Endpoint returns the live or test paymentService URL per the auth context.
func (g *Gateway) Endpoint() string {
	if g.auth.TestMode {
		return apiHostTest + apiPath
	}
	return apiHostLive + apiPath
}

// Purchase submits an initial authorization for the order. An order without a
// transaction id gets a generated one; the caller should persist it as the
// reconciliation key.
func (g *Gateway) Purchase(ctx context.Context, order domain.Order) (*Response, error) {
	if order.TransactionID == "" {
		order.TransactionID = uuid.NewString()
	}

	builder := NewPurchaseRequest(g.auth, order)
	builder.UseBillingAddress = g.useBillingAddress

	return g.send(ctx, builder, order.TransactionID)
}

// Continue3DSecure relays the issuer's PA-response back to Worldpay. The order
// supplies the amount for validation only; no order fields are re-submitted.
func (g *Gateway) Continue3DSecure(ctx context.Context, order domain.Order, cont domain.ThreeDSecureContinuation) (*Response, error) {
	builder := NewPurchaseRequest(g.auth, order)
	builder.ThreeDSecure = &cont

	return g.send(ctx, builder, order.TransactionID)
}

func (g *Gateway) send(ctx context.Context, builder *PurchaseRequest, orderCode string) (*Response, error) {
	doc, err := builder.Build()
	if err != nil {
		return nil, err
	}

	body, err := Serialize(doc)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, domain.WrapError(domain.ErrorCodeGatewayError, "failed to create request", err)
	}

	credentials := base64.StdEncoding.EncodeToString(
		[]byte(fmt.Sprintf("%s:%s", g.auth.BasicAuthUsername(), g.auth.Password)))
	req.Header.Set("Authorization", "Basic "+credentials)
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")

	g.logger.Info("submitting paymentService request",
		zap.String("order_code", orderCode),
		zap.String("merchant", g.auth.Merchant),
		zap.Bool("test_mode", g.auth.TestMode))

	start := time.Now()
	httpResp, err := g.httpClient.Do(req)
	if err != nil {
		observability.RecordGatewayRequest("transport_error", time.Since(start))
		g.logger.Error("paymentService request failed",
			zap.String("order_code", orderCode),
			zap.Error(err))
		return nil, domain.WrapError(domain.ErrorCodeGatewayError, "failed to send request", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		observability.RecordGatewayRequest("transport_error", time.Since(start))
		return nil, domain.WrapError(domain.ErrorCodeGatewayError, "failed to read response", err)
	}

	resp, err := ParseResponse(respBody)
	if err != nil {
		observability.RecordGatewayRequest("malformed_response", time.Since(start))
		return nil, err
	}

	observability.RecordGatewayRequest(gatewayOutcome(resp), time.Since(start))

	g.logger.Info("received paymentService reply",
		zap.String("order_code", orderCode),
		zap.Int("status_code", httpResp.StatusCode),
		zap.String("message", resp.Message()),
		zap.Bool("is_redirect", resp.IsRedirect()))

	return resp, nil
}

func gatewayOutcome(resp *Response) string {
	switch {
	case resp.Kind() == KindTopLevelError:
		return "error"
	case resp.IsRedirect():
		return "redirect"
	case resp.IsSuccessful():
		return "success"
	case resp.IsCancelled():
		return "cancelled"
	case resp.IsPending():
		return "pending"
	default:
		return "refused"
	}
}
