package notification

import (
	"io"
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/kevin07696/worldpay-gateway/internal/adapters/worldpay"
	"github.com/kevin07696/worldpay-gateway/pkg/observability"
)

// Handler serves Worldpay's server-to-server status notifications. Whatever
// happens, the bot gets a well-formed acknowledgement: [OK]/200 only for
// authentic notifications carrying a lifecycle event, [ERROR]/500 otherwise.
type Handler struct {
	validator *worldpay.OriginValidator
	logger    *zap.Logger
}

// NewHandler creates the notification endpoint handler.
func NewHandler(validator *worldpay.OriginValidator, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		validator: validator,
		logger:    logger,
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("failed to read notification body",
			zap.String("ip", clientIP),
			zap.Error(err))
		writeAck(w, worldpay.ResponseCodeError, worldpay.ResponseBodyError)
		observability.RecordNotification("malformed")
		return
	}

	n, err := h.validator.ValidateNotification(r.Context(), body, clientIP)
	if err != nil {
		h.logger.Warn("malformed notification received",
			zap.String("ip", clientIP),
			zap.Error(err))
		writeAck(w, worldpay.ResponseCodeError, worldpay.ResponseBodyError)
		observability.RecordNotification("malformed")
		return
	}

	h.logger.Info("notification processed",
		zap.String("ip", clientIP),
		zap.String("order_code", n.TransactionID()),
		zap.String("status", n.Status()),
		zap.Bool("valid", n.IsValid()),
		zap.Bool("authorised", n.IsAuthorised()))

	writeAck(w, n.ResponseStatusCode(), n.ResponseBody())
	observability.RecordNotification(verdict(n))
}

func writeAck(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(code)
	w.Write([]byte(body))
}

func verdict(n *worldpay.Notification) string {
	switch {
	case n.IsValid():
		return "valid"
	case !n.OriginIsValid():
		return "invalid_origin"
	default:
		return "no_status"
	}
}

// getClientIP extracts the client IP from the request
func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header first (for proxies/load balancers)
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		// X-Forwarded-For can contain multiple IPs, take the first one
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			ip := strings.TrimSpace(ips[0])
			if ip != "" {
				return ip
			}
		}
	}

	// Check X-Real-IP header
	xri := r.Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	// Fall back to RemoteAddr
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr might not have a port
		return r.RemoteAddr
	}
	return host
}
