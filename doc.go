// SPDX-License-Identifier: GPL-3.0-or-later

// Package radiodns implements RadioDNS service discovery.
//
// A broadcast signal is described by an [Identifier] constructed from its
// tuning parameters using [NewFMService], [NewAMService], [NewDABService],
// [NewDABServiceWithUAType], [NewHDService] or [NewHDServiceWithMID]. Each
// identifier maps to a canonical FQDN below radiodns.org.
//
// The [*Resolver] queries the canonical FQDN for a CNAME to discover the
// broadcaster's authoritative FQDN and then queries
// _<application>._tcp.<authoritative FQDN> for SRV records, returning an
// [*Application] containing one [Record] per SRV answer.
//
// DNS messages are built with [NewQuery] and validated with [ParseResponse],
// which use and expose [github.com/miekg/dns] types. The [Transport] interface
// abstracts the round trip and [*DNSTransport] implements it over UDP and TCP.
package radiodns
