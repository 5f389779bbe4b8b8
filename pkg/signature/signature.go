// Package signature verifies provider-signed webhook payloads. Verification is
// delegated to the Svix library the provider signs with; this package only
// decides when it runs and keeps the raw-bytes contract explicit.
package signature

import (
	"fmt"
	"net/http"

	svix "github.com/svix/svix-webhooks/go"

	"github.com/dquezada/pasarela/config"
)

//go:generate go run go.uber.org/mock/mockgen -source=signature.go -destination=mock/signature_mock.go -package=mock github.com/dquezada/pasarela/pkg/signature Verifier

// Mode controls whether unsigned or badly signed payloads are rejected.
type Mode int

const (
	// Enforced rejects any payload whose signature does not validate.
	Enforced Mode = iota
	// Permissive skips verification entirely. Pre-production only; config
	// refuses to load it under APP_ENV=production.
	Permissive
)

func (m Mode) String() string {
	if m == Permissive {
		return config.EnforcementPermissive
	}

	return config.EnforcementEnforced
}

// ParseMode maps the configured enforcement string to a Mode. Unknown values
// never reach this point, config validation rejects them at startup.
func ParseMode(s string) (Mode, error) {
	switch s {
	case config.EnforcementEnforced:
		return Enforced, nil
	case config.EnforcementPermissive:
		return Permissive, nil
	default:
		return Enforced, fmt.Errorf("signature: unknown enforcement mode %q", s)
	}
}

// Verifier checks that payload was produced by the holder of the shared
// secret. The payload must be the exact raw bytes received on the wire; any
// re-encoding before the check invalidates the signature.
type Verifier interface {
	Verify(payload []byte, headers http.Header) error
}

type SvixVerifier struct {
	webhook *svix.Webhook
}

var _ Verifier = (*SvixVerifier)(nil)

func NewSvixVerifier(secret string) (*SvixVerifier, error) {
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, fmt.Errorf("signature: init svix webhook: %w", err)
	}

	return &SvixVerifier{webhook: wh}, nil
}

func (v *SvixVerifier) Verify(payload []byte, headers http.Header) error {
	if err := v.webhook.Verify(payload, headers); err != nil {
		return fmt.Errorf("signature: verify webhook: %w", err)
	}

	return nil
}

// NoopVerifier accepts everything. It backs Permissive mode, where the
// signing secret is not yet provisioned.
type NoopVerifier struct{}

var _ Verifier = NoopVerifier{}

func (NoopVerifier) Verify([]byte, http.Header) error {
	return nil
}
