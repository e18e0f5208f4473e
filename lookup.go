// SPDX-License-Identifier: GPL-3.0-or-later

package radiodns

import "context"

// Lookup constructs broadcast identifiers and resolves their applications
// using the underlying [*Resolver].
//
// The constructor methods return the same errors as the corresponding
// New*Service functions and do not perform any DNS lookup.
type Lookup struct {
	// Resolver is the MANDATORY resolver used by
	// [*Lookup.Application] and [*Lookup.AuthoritativeFQDN].
	Resolver *Resolver
}

// NewLookup creates a new [*Lookup] using the given resolver.
func NewLookup(resolver *Resolver) *Lookup {
	return &Lookup{Resolver: resolver}
}

// FMService is like [NewFMService].
func (l *Lookup) FMService(gcc, pi string, frequency float64) (Identifier, error) {
	s, err := NewFMService(gcc, pi, frequency)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// AMService is like [NewAMService].
func (l *Lookup) AMService(kind, sid string) (Identifier, error) {
	s, err := NewAMService(kind, sid)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// DABService is like [NewDABService].
func (l *Lookup) DABService(gcc, eid, sid, scids string) (Identifier, error) {
	s, err := NewDABService(gcc, eid, sid, scids)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// DABServiceWithUAType is like [NewDABServiceWithUAType].
func (l *Lookup) DABServiceWithUAType(gcc, eid, sid, scids, uatype string) (Identifier, error) {
	s, err := NewDABServiceWithUAType(gcc, eid, sid, scids, uatype)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// HDService is like [NewHDService].
func (l *Lookup) HDService(tx, cc string) (Identifier, error) {
	s, err := NewHDService(tx, cc)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// HDServiceWithMID is like [NewHDServiceWithMID].
func (l *Lookup) HDServiceWithMID(tx, cc, mid string) (Identifier, error) {
	s, err := NewHDServiceWithMID(tx, cc, mid)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// AuthoritativeFQDN is like [*Resolver.ResolveAuthoritative].
func (l *Lookup) AuthoritativeFQDN(ctx context.Context, id Identifier) (string, error) {
	return l.Resolver.ResolveAuthoritative(ctx, id)
}

// Application is like [*Resolver.Resolve].
func (l *Lookup) Application(ctx context.Context, id Identifier, applicationID string) (*Application, error) {
	return l.Resolver.Resolve(ctx, id, applicationID)
}
