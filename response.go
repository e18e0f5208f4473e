//
// SPDX-License-Identifier: BSD-3-Clause
//
// Adapted from: https://github.com/bassosimone/dnscodec
// Adapted from: https://github.com/golang/go/blob/go1.21.10/src/net/dnsclient_unix.go
//

package radiodns

import (
	"errors"

	"github.com/miekg/dns"
)

// These error messages use the same suffixes used by the Go standard library.
var (
	// ErrInvalidQuery means that the query does not contain a single question.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidResponse means that the response is not a response message
	// or does not contain a single question matching the query.
	ErrInvalidResponse = errors.New("invalid DNS response")

	// ErrNoName indicates that the server response code is NXDOMAIN.
	ErrNoName = errors.New("no such host")

	// ErrServerMisbehaving indicates that the server response code is
	// neither 0, nor NXDOMAIN, nor SERVFAIL.
	ErrServerMisbehaving = errors.New("server misbehaving")

	// ErrServerTemporarilyMisbehaving indicates that the server answer is SERVFAIL.
	//
	// The error message is same as [ErrServerMisbehaving] for compatibility with the
	// Go standard library, which assigns the same error string to both errors.
	ErrServerTemporarilyMisbehaving = errors.New("server misbehaving")

	// ErrNoData indicates that there is no pertinent answer in the response.
	ErrNoData = errors.New("no answer from DNS server")
)

// ValidateResponseForQuery validates a DNS response for a given query.
// On success it returns the single validated question from the query.
func ValidateResponseForQuery(query, resp *dns.Msg) (dns.Question, error) {
	// 1. the message must be a response to this query
	if !resp.Response || resp.Id != query.Id {
		return dns.Question{}, ErrInvalidResponse
	}

	// 2. both messages must carry exactly one question
	if len(query.Question) != 1 {
		return dns.Question{}, ErrInvalidQuery
	}
	if len(resp.Question) != 1 {
		return dns.Question{}, ErrInvalidResponse
	}

	// 3. the response question must echo the query question
	q0, r0 := query.Question[0], resp.Question[0]
	if !responseEqualASCIIName(r0.Name, q0.Name) || r0.Qclass != q0.Qclass || r0.Qtype != q0.Qtype {
		return dns.Question{}, ErrInvalidResponse
	}
	return q0, nil
}

// SPDX-License-Identifier: BSD-3-Clause
//
// Borrowed from Go src/net package.
func responseEqualASCIIName(x, y string) bool {
	if len(x) != len(y) {
		return false
	}
	for i := 0; i < len(x); i++ {
		a := x[i]
		b := y[i]
		if 'A' <= a && a <= 'Z' {
			a += 0x20
		}
		if 'A' <= b && b <= 'Z' {
			b += 0x20
		}
		if a != b {
			return false
		}
	}
	return true
}

// ResponseErrorFromRCODE maps the RCODE of a response that passed
// [ValidateResponseForQuery] to an error compatible with the error
// strings returned by [*net.Resolver]. It returns nil on success.
func ResponseErrorFromRCODE(resp *dns.Msg) error {
	switch {
	// 1. NXDOMAIN maps to EAI_NONAME
	case resp.Rcode == dns.RcodeNameError:
		return ErrNoName

	// 2. SERVFAIL is temporary
	case resp.Rcode == dns.RcodeServerFailure:
		return ErrServerTemporarilyMisbehaving

	// 3. any other error RCODE maps to EAI_FAIL
	case resp.Rcode != dns.RcodeSuccess:
		return ErrServerMisbehaving

	// 4. lame referral maps to EAI_NODATA
	case !resp.Authoritative && !resp.RecursionAvailable && len(resp.Answer) == 0:
		return ErrNoData

	default:
		return nil
	}
}

// ResponseExtractValidAnswers returns the RRs of resp that answer q0, in
// the order in which they appear in the response, or [ErrNoData].
//
// An RR answers q0 when its class matches and its owner name is either
// the query name or a name reached from the query name through the chain
// of CNAMEs contained in the answer section (RFC 1034 section 4.3.1).
func ResponseExtractValidAnswers(q0 dns.Question, resp *dns.Msg) ([]dns.RR, error) {
	// 1. follow the CNAME chain from the query name, comparing names
	// case-insensitively since servers may not canonicalize them
	chain := map[string]bool{dns.CanonicalName(q0.Name): true}
	current := q0.Name
	for _, answer := range resp.Answer {
		cname, ok := answer.(*dns.CNAME)
		if !ok {
			continue
		}
		if responseEqualASCIIName(current, cname.Hdr.Name) && cname.Hdr.Class == q0.Qclass {
			current = dns.CanonicalName(cname.Target)
			chain[current] = true
		}
	}

	// 2. keep the RRs owned by a name in the chain, of any type
	var valid []dns.RR
	for _, answer := range resp.Answer {
		header := answer.Header()
		if header.Class != q0.Qclass || !chain[dns.CanonicalName(header.Name)] {
			continue
		}
		valid = append(valid, answer)
	}

	// 3. an empty answer is NODATA
	if len(valid) < 1 {
		return nil, ErrNoData
	}
	return valid, nil
}

// Response is a validated DNS response.
//
// Construct a new instance using [ParseResponse].
type Response struct {
	// Query is the original query message.
	Query *dns.Msg

	// Response is the response message.
	Response *dns.Msg

	// ValidRRs contains the valid RRs for the query.
	ValidRRs []dns.RR
}

// ParseResponse returns a [*Response] given a query and response messages or an
// error if the response message is not valid for the query, contains an error
// RCODE, or does not contain any answer for the query.
func ParseResponse(query *dns.Msg, resp *dns.Msg) (*Response, error) {
	q0, err := ValidateResponseForQuery(query, resp)
	if err != nil {
		return nil, err
	}
	if err := ResponseErrorFromRCODE(resp); err != nil {
		return nil, err
	}
	rrs, err := ResponseExtractValidAnswers(q0, resp)
	if err != nil {
		return nil, err
	}
	return &Response{Query: query, Response: resp, ValidRRs: rrs}, nil
}

// RecordFirstCNAME returns the target of the first CNAME in the response.
func (r *Response) RecordFirstCNAME() (string, error) {
	for _, rr := range r.ValidRRs {
		if cname, ok := rr.(*dns.CNAME); ok {
			return cname.Target, nil
		}
	}
	return "", ErrNoData
}

// RecordsSRV returns all the SRV records in the response, in
// the order in which they appear in the response.
func (r *Response) RecordsSRV() ([]*dns.SRV, error) {
	out := make([]*dns.SRV, 0, len(r.ValidRRs))
	for _, rr := range r.ValidRRs {
		if srv, ok := rr.(*dns.SRV); ok {
			out = append(out, srv)
		}
	}
	if len(out) < 1 {
		return nil, ErrNoData
	}
	return out, nil
}
