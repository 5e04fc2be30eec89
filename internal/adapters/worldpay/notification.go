package worldpay

import (
	"context"
	"net"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Acknowledgement literals for the Worldpay notification bot. The bot retries
// until it sees exactly this body and status, so they must not be altered.
const (
	ResponseBodySuccess = "[OK]"
	ResponseCodeSuccess = 200
	ResponseBodyError   = "[ERROR]"
	ResponseCodeError   = 500
)

// Resolver performs reverse-DNS lookups. net.DefaultResolver satisfies it;
// tests inject a fake so validation never touches the network.
type Resolver interface {
	LookupAddr(ctx context.Context, addr string) ([]string, error)
}

// OriginValidatorConfig controls how a notification's claimed origin address
// is authenticated.
type OriginValidatorConfig struct {
	// HostSuffix is matched length-anchored against the reverse-DNS hostname.
	HostSuffix string

	// AllowedIPPrefixes is the secondary allow-list applied when reverse DNS
	// gives no usable hostname. Worldpay's published ranges can change, so
	// these stay configurable.
	AllowedIPPrefixes []string

	// LookupTimeout bounds the reverse-DNS call; a timed-out lookup counts
	// as a failed one.
	LookupTimeout time.Duration
}

// DefaultOriginValidatorConfig returns the current Worldpay origin policy.
func DefaultOriginValidatorConfig() OriginValidatorConfig {
	return OriginValidatorConfig{
		HostSuffix:        "worldpay.com",
		AllowedIPPrefixes: []string{"195.35.90.", "195.35.91."},
		LookupTimeout:     5 * time.Second,
	}
}

// OriginValidator authenticates inbound notifications by their claimed origin
// address and lifecycle content.
type OriginValidator struct {
	config   OriginValidatorConfig
	resolver Resolver
	logger   *zap.Logger
}

// NewOriginValidator creates a validator. A nil resolver uses the system one.
func NewOriginValidator(config OriginValidatorConfig, resolver Resolver, logger *zap.Logger) *OriginValidator {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OriginValidator{
		config:   config,
		resolver: resolver,
		logger:   logger,
	}
}

// OriginIsValid reports whether the claimed origin address belongs to the
// provider. It fails closed: an empty address, a failed or timed-out lookup
// and an unmatched hostname are all invalid unless the IP-prefix allow-list
// matches.
func (v *OriginValidator) OriginIsValid(ctx context.Context, originIP string) bool {
	if originIP == "" {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, v.config.LookupTimeout)
	defer cancel()

	names, err := v.resolver.LookupAddr(ctx, originIP)
	if err != nil {
		v.logger.Debug("reverse DNS lookup failed",
			zap.String("origin_ip", originIP),
			zap.Error(err))
	}

	for _, name := range names {
		if v.hostnameMatches(name) {
			return true
		}
	}

	for _, prefix := range v.config.AllowedIPPrefixes {
		if prefix != "" && strings.HasPrefix(originIP, prefix) {
			return true
		}
	}

	return false
}

// hostnameMatches applies the length-anchored suffix comparison. A plain
// substring search would accept hosts like notworldpay.com.evil.example.
func (v *OriginValidator) hostnameMatches(hostname string) bool {
	hostname = strings.ToLower(strings.TrimSuffix(hostname, "."))
	if hostname == "" {
		return false
	}
	return strings.HasSuffix(hostname, v.config.HostSuffix)
}

// ValidateNotification parses a raw notification body and authenticates its
// claimed origin. Parsing a malformed body is the only error path; an
// unauthentic or statusless notification simply reports IsValid() == false.
func (v *OriginValidator) ValidateNotification(ctx context.Context, body []byte, originIP string) (*Notification, error) {
	resp, err := ParseResponse(body)
	if err != nil {
		return nil, err
	}

	n := &Notification{
		Response: resp,
		OriginIP: originIP,
	}
	n.originValid = v.OriginIsValid(ctx, originIP)

	if !n.originValid {
		v.logger.Warn("notification from unauthenticated origin",
			zap.String("origin_ip", originIP),
			zap.String("order_code", resp.TransactionID()))
	}

	return n, nil
}

// Notification is a parsed asynchronous status event plus its authenticity
// verdict. It is constructed per inbound call and never persisted.
type Notification struct {
	*Response
	OriginIP string

	originValid bool
}

// OriginIsValid reports the origin verdict computed at validation time.
func (n *Notification) OriginIsValid() bool {
	return n.originValid
}

// IsValid reports whether the notification is both authentic and structurally
// usable (carries a lifecycle event).
func (n *Notification) IsValid() bool {
	return n.originValid && n.HasStatus()
}

// IsAuthorised reports whether a valid notification carries a success event.
func (n *Notification) IsAuthorised() bool {
	return n.IsValid() && n.IsSuccessful()
}

// ResponseBody returns the exact acknowledgement body the provider expects.
func (n *Notification) ResponseBody() string {
	if n.IsValid() {
		return ResponseBodySuccess
	}
	return ResponseBodyError
}

// ResponseStatusCode returns the acknowledgement HTTP status code.
func (n *Notification) ResponseStatusCode() int {
	if n.IsValid() {
		return ResponseCodeSuccess
	}
	return ResponseCodeError
}
