// SPDX-License-Identifier: GPL-3.0-or-later

package radiodns

import (
	"context"
	"sync"

	"github.com/miekg/dns"
)

func newTestCNAME(name, target string) *dns.CNAME {
	return &dns.CNAME{
		Hdr: dns.RR_Header{
			Name:   name,
			Rrtype: dns.TypeCNAME,
			Class:  dns.ClassINET,
			Ttl:    3600,
		},
		Target: target,
	}
}

func newTestSRV(name string, priority, weight, port uint16, target string) *dns.SRV {
	return &dns.SRV{
		Hdr: dns.RR_Header{
			Name:   name,
			Rrtype: dns.TypeSRV,
			Class:  dns.ClassINET,
			Ttl:    300,
		},
		Priority: priority,
		Weight:   weight,
		Port:     port,
		Target:   target,
	}
}

// testZone maps a query name and type to the answers returned
// by the [*testTransport]. A missing entry yields NXDOMAIN.
type testZone map[dns.Question][]dns.RR

func (z testZone) add(rrs ...dns.RR) testZone {
	for _, rr := range rrs {
		hdr := rr.Header()
		q := dns.Question{Name: dns.CanonicalName(hdr.Name), Qtype: hdr.Rrtype, Qclass: dns.ClassINET}
		z[q] = append(z[q], rr)
	}
	return z
}

// testTransport is a [Transport] answering from a [testZone]
// and recording all the queries it receives.
type testTransport struct {
	// err, if set, is returned for queries of type errType.
	err     error
	errType uint16

	mu      sync.Mutex
	queries []*Query
	zone    testZone
}

func newTestTransport(zone testZone) *testTransport {
	return &testTransport{zone: zone}
}

func (tr *testTransport) Exchange(ctx context.Context, query *Query) (*Response, error) {
	tr.mu.Lock()
	tr.queries = append(tr.queries, query.Clone())
	tr.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if tr.err != nil && tr.errType == query.Type {
		return nil, tr.err
	}

	msg, err := query.NewMsg()
	if err != nil {
		return nil, err
	}
	resp := new(dns.Msg)
	resp.SetReply(msg)
	resp.RecursionAvailable = true
	q0 := msg.Question[0]
	q0.Name = dns.CanonicalName(q0.Name)
	answers, found := tr.zone[q0]
	if !found {
		resp.Rcode = dns.RcodeNameError
	}
	resp.Answer = append(resp.Answer, answers...)
	return ParseResponse(msg, resp)
}

// types returns the types of the queries received so far.
func (tr *testTransport) types() []uint16 {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	var out []uint16
	for _, q := range tr.queries {
		out = append(out, q.Type)
	}
	return out
}

// names returns the names of the queries received so far.
func (tr *testTransport) names() []string {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	var out []string
	for _, q := range tr.queries {
		out = append(out, q.Name)
	}
	return out
}
