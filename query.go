//
// SPDX-License-Identifier: BSD-3-Clause
//
// Adapted from: https://github.com/bassosimone/dnscodec
//

package radiodns

import (
	"strconv"
	"strings"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

const (
	// QueryMaxResponseSizeUDP is the maximum response size when using UDP
	// and is consistent with what the standard library uses.
	QueryMaxResponseSizeUDP = 1232

	// QueryMaxResponseSizeTCP is the maximum response size when using TCP
	// and is consistent with what the standard library uses.
	QueryMaxResponseSizeTCP = 4096
)

// Query is a DNS query issued by the [*Resolver].
//
// Construct using [NewQuery] or set the MANDATORY fields.
type Query struct {
	// ID is the OPTIONAL query ID.
	ID uint16

	// MaxSize is the OPTIONAL maximum response size to include in the
	// query using EDNS(0). When zero, the query does not use EDNS(0).
	//
	// Use [QueryMaxResponseSizeUDP] or [QueryMaxResponseSizeTCP].
	MaxSize uint16

	// Name is the MANDATORY domain name to query.
	Name string

	// Type is the MANDATORY query type (e.g., [dns.TypeSRV]).
	Type uint16
}

// NewQuery constructs a new [*Query] with safe defaults.
//
// By default, the query uses a randomized ID and [QueryMaxResponseSizeUDP]
// as the EDNS(0) maximum response size.
func NewQuery(name string, qtype uint16) *Query {
	return &Query{
		ID:      dns.Id(),
		MaxSize: QueryMaxResponseSizeUDP,
		Name:    name,
		Type:    qtype,
	}
}

// Clone returns a copy of the query.
func (q *Query) Clone() *Query {
	return &Query{
		ID:      q.ID,
		MaxSize: q.MaxSize,
		Name:    q.Name,
		Type:    q.Type,
	}
}

// String returns the query name followed by the query type.
func (q *Query) String() string {
	qtype, ok := dns.TypeToString[q.Type]
	if !ok {
		qtype = "TYPE" + strconv.Itoa(int(q.Type))
	}
	return q.Name + " " + qtype
}

// NewMsg creates a new recursive [*dns.Msg] from the [*Query].
func (q *Query) NewMsg() (*dns.Msg, error) {
	name, err := queryEncodeName(q.Name)
	if err != nil {
		return nil, err
	}

	msg := new(dns.Msg)
	msg.Id = q.ID
	msg.RecursionDesired = true
	msg.Question = []dns.Question{{
		Name:   dns.Fqdn(name),
		Qtype:  q.Type,
		Qclass: dns.ClassINET,
	}}
	if q.MaxSize > 0 {
		msg.SetEdns0(q.MaxSize, false)
	}
	return msg, nil
}

// queryEncodeName IDNA encodes each label of name except for the
// underscore-prefixed service labels (e.g., _radioepg._tcp) that the
// IDNA lookup profile rejects.
func queryEncodeName(name string) (string, error) {
	labels := strings.Split(strings.TrimSuffix(name, "."), ".")
	for idx, label := range labels {
		if strings.HasPrefix(label, "_") {
			continue
		}
		ascii, err := idna.Lookup.ToASCII(label)
		if err != nil {
			return "", err
		}
		labels[idx] = ascii
	}
	return strings.Join(labels, "."), nil
}
