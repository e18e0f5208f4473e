// SPDX-License-Identifier: GPL-3.0-or-later

package radiodns

// HDService identifies an HD Radio (IBOC) service, optionally
// narrowed to a multicast supplemental program service channel.
//
// Construct using [NewHDService] or [NewHDServiceWithMID].
type HDService struct {
	tx  string
	cc  string
	mid string
}

var _ Identifier = &HDService{}

// NewHDService validates the HD parameters and returns a new [*HDService].
//
// The tx is the 5-hex-digit transmitter identifier and the cc
// is the 3-hex-digit country code.
func NewHDService(tx, cc string) (*HDService, error) {
	tx, err := identifierParseHex("tx", tx, identifierHex5)
	if err != nil {
		return nil, err
	}
	cc, err = identifierParseHex("cc", cc, identifierHex3)
	if err != nil {
		return nil, err
	}
	return &HDService{tx: tx, cc: cc}, nil
}

// NewHDServiceWithMID is like [NewHDService] but also takes the
// 1-hex-digit multicast SPS channel identifier.
func NewHDServiceWithMID(tx, cc, mid string) (*HDService, error) {
	s, err := NewHDService(tx, cc)
	if err != nil {
		return nil, err
	}
	s.mid, err = identifierParseHex("mid", mid, identifierHex1)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// TX returns the lowercase transmitter identifier.
func (s *HDService) TX() string {
	return s.tx
}

// CC returns the lowercase country code.
func (s *HDService) CC() string {
	return s.cc
}

// MId returns the lowercase multicast channel identifier or an empty string.
func (s *HDService) MId() string {
	return s.mid
}

// CanonicalFQDN implements [Identifier].
func (s *HDService) CanonicalFQDN() string {
	if s.mid != "" {
		return identifierJoin(s.mid, s.tx, s.cc, "hd")
	}
	return identifierJoin(s.tx, s.cc, "hd")
}

// String returns the canonical FQDN.
func (s *HDService) String() string {
	return s.CanonicalFQDN()
}

func (s *HDService) isIdentifier() {}
