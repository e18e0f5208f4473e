// SPDX-License-Identifier: GPL-3.0-or-later

package radiodns

import "strings"

// AM service types.
const (
	// AMTypeDRM is Digital Radio Mondiale.
	AMTypeDRM = "drm"

	// AMTypeAMSS is the AM Signalling System.
	AMTypeAMSS = "amss"
)

// AMService identifies a DRM or AMSS service.
//
// Construct using [NewAMService].
type AMService struct {
	kind string
	sid  string
}

var _ Identifier = &AMService{}

// NewAMService validates the AM parameters and returns a new [*AMService].
//
// The kind is either [AMTypeDRM] or [AMTypeAMSS] and the sid is the
// service identifier of at least 6 hex digits.
func NewAMService(kind, sid string) (*AMService, error) {
	if kind == "" {
		return nil, newMissingParameterError("type")
	}
	lower := strings.ToLower(kind)
	if lower != AMTypeDRM && lower != AMTypeAMSS {
		return nil, newInvalidParameterError("type", kind)
	}
	sid, err := identifierParseHex("sid", sid, identifierHex6OrMore)
	if err != nil {
		return nil, err
	}
	return &AMService{kind: lower, sid: sid}, nil
}

// Type returns either [AMTypeDRM] or [AMTypeAMSS].
func (s *AMService) Type() string {
	return s.kind
}

// SId returns the lowercase service identifier.
func (s *AMService) SId() string {
	return s.sid
}

// CanonicalFQDN implements [Identifier].
func (s *AMService) CanonicalFQDN() string {
	return identifierJoin(s.sid, s.kind)
}

// String returns the canonical FQDN.
func (s *AMService) String() string {
	return s.CanonicalFQDN()
}

func (s *AMService) isIdentifier() {}
