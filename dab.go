// SPDX-License-Identifier: GPL-3.0-or-later

package radiodns

// DABService identifies a DAB service component, optionally
// narrowed to a user application carried in X-PAD.
//
// Construct using [NewDABService] or [NewDABServiceWithUAType].
type DABService struct {
	gcc    string
	eid    string
	sid    string
	scids  string
	uatype string
}

var _ Identifier = &DABService{}

// NewDABService validates the DAB parameters and returns a new [*DABService].
//
// The gcc is the 3-hex-digit global country code, the eid is the 4-hex-digit
// ensemble identifier, the sid is the 4-hex-digit (audio) or 8-hex-digit (data)
// service identifier and the scids is the 1-hex-digit service component
// identifier within the service.
func NewDABService(gcc, eid, sid, scids string) (*DABService, error) {
	gcc, err := identifierParseHex("gcc", gcc, identifierHex3)
	if err != nil {
		return nil, err
	}
	eid, err = identifierParseHex("eid", eid, identifierHex4)
	if err != nil {
		return nil, err
	}
	sid, err = identifierParseHex("sid", sid, identifierDABSId)
	if err != nil {
		return nil, err
	}
	scids, err = identifierParseHex("scids", scids, identifierHex1)
	if err != nil {
		return nil, err
	}
	return &DABService{gcc: gcc, eid: eid, sid: sid, scids: scids}, nil
}

// NewDABServiceWithUAType is like [NewDABService] but also takes
// the 3-hex-digit user application type.
func NewDABServiceWithUAType(gcc, eid, sid, scids, uatype string) (*DABService, error) {
	s, err := NewDABService(gcc, eid, sid, scids)
	if err != nil {
		return nil, err
	}
	s.uatype, err = identifierParseHex("uatype", uatype, identifierHex3)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GCC returns the lowercase global country code.
func (s *DABService) GCC() string {
	return s.gcc
}

// EId returns the lowercase ensemble identifier.
func (s *DABService) EId() string {
	return s.eid
}

// SId returns the lowercase service identifier.
func (s *DABService) SId() string {
	return s.sid
}

// SCIdS returns the lowercase service component identifier.
func (s *DABService) SCIdS() string {
	return s.scids
}

// UAType returns the lowercase user application type or an empty string.
func (s *DABService) UAType() string {
	return s.uatype
}

// CanonicalFQDN implements [Identifier].
func (s *DABService) CanonicalFQDN() string {
	if s.uatype != "" {
		return identifierJoin(s.uatype, s.scids, s.sid, s.eid, s.gcc, "dab")
	}
	return identifierJoin(s.scids, s.sid, s.eid, s.gcc, "dab")
}

// String returns the canonical FQDN.
func (s *DABService) String() string {
	return s.CanonicalFQDN()
}

func (s *DABService) isIdentifier() {}
