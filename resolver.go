// SPDX-License-Identifier: GPL-3.0-or-later

package radiodns

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// DefaultHopTimeout is the default per-hop timeout used by [NewResolver].
const DefaultHopTimeout = 10 * time.Second

// Resolver discovers the applications of a broadcast service.
//
// Resolution consists of two sequential hops: the CNAME lookup of the
// canonical FQDN (see [*Resolver.ResolveAuthoritative]) and the SRV lookup
// of the application below the authoritative FQDN (see
// [*Resolver.ResolveApplication]). A failed hop terminates the resolution.
//
// A Resolver has no mutable state and is safe for concurrent use
// as long as its fields are not modified.
//
// Construct using [NewResolver] or set the MANDATORY fields.
type Resolver struct {
	// Logger is the OPTIONAL logger. When nil, we use [slog.Default].
	Logger *slog.Logger

	// Timeout is the OPTIONAL timeout applied to each hop. When
	// zero, only the context passed by the caller applies.
	Timeout time.Duration

	// Transport is the MANDATORY transport. When nil, every
	// hop fails with [ErrMissingParameter].
	Transport Transport
}

// NewResolver creates a new [*Resolver] using the given transport
// and the [DefaultHopTimeout].
func NewResolver(transport Transport) *Resolver {
	return &Resolver{
		Logger:    slog.Default(),
		Timeout:   DefaultHopTimeout,
		Transport: transport,
	}
}

// Resolve resolves the authoritative FQDN of id and then the
// application identified by applicationID below it.
//
// The returned error is a [*ResolveError] describing the failed hop. The SRV
// lookup is never attempted when the CNAME lookup fails.
func (r *Resolver) Resolve(ctx context.Context, id Identifier, applicationID string) (*Application, error) {
	authoritative, err := r.ResolveAuthoritative(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.ResolveApplication(ctx, authoritative, applicationID)
}

// ResolveAuthoritative resolves the CNAME of the canonical FQDN of id and
// returns its target without the trailing dot.
//
// When the response contains more than one CNAME answering the
// query, we use the first one.
func (r *Resolver) ResolveAuthoritative(ctx context.Context, id Identifier) (string, error) {
	if identifierIsNil(id) {
		return "", &ResolveError{Hop: HopAuthoritative, Err: ErrMissingParameter}
	}
	name := id.CanonicalFQDN()

	resp, err := r.exchange(ctx, NewQuery(name, dns.TypeCNAME))
	if err != nil {
		return "", r.fail(HopAuthoritative, name, err)
	}
	target, err := resp.RecordFirstCNAME()
	if err != nil {
		return "", r.fail(HopAuthoritative, name, err)
	}

	target = strings.TrimSuffix(target, ".")
	if target == "" {
		return "", r.fail(HopAuthoritative, name, ErrNoData)
	}
	r.logger().Debug("radiodns: authoritative FQDN resolved", "name", name, "authoritative", target)
	return target, nil
}

// ResolveApplication resolves the SRV records of the application identified
// by applicationID below the given authoritative FQDN.
//
// The records are returned in the order in which they appear in the response.
func (r *Resolver) ResolveApplication(
	ctx context.Context, authoritativeFQDN, applicationID string) (*Application, error) {
	authoritativeFQDN = strings.TrimSuffix(authoritativeFQDN, ".")
	if authoritativeFQDN == "" || applicationID == "" {
		return nil, &ResolveError{Hop: HopApplication, Err: ErrMissingParameter}
	}
	name := ApplicationFQDN(applicationID, authoritativeFQDN)

	resp, err := r.exchange(ctx, NewQuery(name, dns.TypeSRV))
	if err != nil {
		return nil, r.fail(HopApplication, name, err)
	}
	srvs, err := resp.RecordsSRV()
	if err != nil {
		return nil, r.fail(HopApplication, name, err)
	}

	records := make([]Record, 0, len(srvs))
	for _, srv := range srvs {
		records = append(records, newRecord(srv))
	}
	r.logger().Debug("radiodns: application resolved", "name", name, "records", len(records))
	return newApplication(applicationID, records), nil
}

// ApplicationFQDN returns the name to query for the SRV records of
// the given application below the given authoritative FQDN.
func ApplicationFQDN(applicationID, authoritativeFQDN string) string {
	return "_" + strings.ToLower(applicationID) + "._tcp." + authoritativeFQDN
}

// exchange performs a round trip applying the per-hop timeout.
//
// A nil Transport fails with [ErrMissingParameter].
func (r *Resolver) exchange(ctx context.Context, query *Query) (*Response, error) {
	if r.Transport == nil {
		return nil, ErrMissingParameter
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	r.logger().Debug("radiodns: query", "query", query.String(), "id", query.ID)
	return r.Transport.Exchange(ctx, query)
}

func (r *Resolver) fail(hop Hop, name string, err error) error {
	r.logger().Debug("radiodns: resolution failed", "hop", hop.String(), "name", name, "error", err)
	return &ResolveError{Hop: hop, Name: name, Err: err}
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}
