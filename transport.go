// SPDX-License-Identifier: GPL-3.0-or-later

package radiodns

import (
	"context"
	"net"
	"time"

	"github.com/miekg/dns"
)

// Transport performs a single DNS round trip.
//
// Implementations own their timeout and retry policy. The
// [*Resolver] never retries a failed round trip.
type Transport interface {
	// Exchange sends the query and returns the validated response.
	//
	// Implementations should return the errors emitted by
	// [ParseResponse] when the response is not valid.
	Exchange(ctx context.Context, query *Query) (*Response, error)
}

// TransportFunc adapts a function to the [Transport] interface.
type TransportFunc func(ctx context.Context, query *Query) (*Response, error)

var _ Transport = TransportFunc(nil)

// Exchange implements [Transport].
func (fx TransportFunc) Exchange(ctx context.Context, query *Query) (*Response, error) {
	return fx(ctx, query)
}

// DefaultServer is the server used when the system
// resolver configuration is not available.
const DefaultServer = "1.1.1.1:53"

// DNSTransportConfig configures a [*DNSTransport].
type DNSTransportConfig struct {
	// Server is the server address (e.g. "1.1.1.1:53").
	Server string

	// Timeout is the timeout of each exchange.
	Timeout time.Duration

	// DisableTCPFallback disables retrying over TCP when
	// the UDP response is truncated.
	DisableTCPFallback bool
}

// DefaultDNSTransportConfig returns a [DNSTransportConfig] using the first
// nameserver in /etc/resolv.conf or [DefaultServer].
func DefaultDNSTransportConfig() DNSTransportConfig {
	return DNSTransportConfig{
		Server:  SystemServer("/etc/resolv.conf"),
		Timeout: 5 * time.Second,
	}
}

// SystemServer returns the address of the first nameserver
// configured in the given resolv.conf file or [DefaultServer].
func SystemServer(resolvconf string) string {
	cfg, err := dns.ClientConfigFromFile(resolvconf)
	if err != nil || len(cfg.Servers) < 1 {
		return DefaultServer
	}
	return net.JoinHostPort(cfg.Servers[0], cfg.Port)
}

// DNSTransport is a [Transport] using [*dns.Client].
//
// Construct using [NewDNSTransport].
type DNSTransport struct {
	config DNSTransportConfig
	udp    *dns.Client
	tcp    *dns.Client
}

var _ Transport = &DNSTransport{}

// NewDNSTransport creates a new [*DNSTransport].
func NewDNSTransport(cfg DNSTransportConfig) *DNSTransport {
	return &DNSTransport{
		config: cfg,
		udp:    &dns.Client{Net: "udp", Timeout: cfg.Timeout, UDPSize: QueryMaxResponseSizeUDP},
		tcp:    &dns.Client{Net: "tcp", Timeout: cfg.Timeout},
	}
}

// Server returns the server address.
func (t *DNSTransport) Server() string {
	return t.config.Server
}

// Exchange implements [Transport].
//
// The query is sent over UDP. When the response is truncated,
// the query is sent again over TCP unless disabled.
func (t *DNSTransport) Exchange(ctx context.Context, query *Query) (*Response, error) {
	msg, err := query.NewMsg()
	if err != nil {
		return nil, err
	}
	resp, _, err := t.udp.ExchangeContext(ctx, msg, t.config.Server)
	if err != nil {
		return nil, err
	}
	if resp.Truncated && !t.config.DisableTCPFallback {
		tcpQuery := query.Clone()
		tcpQuery.MaxSize = QueryMaxResponseSizeTCP
		if msg, err = tcpQuery.NewMsg(); err != nil {
			return nil, err
		}
		if resp, _, err = t.tcp.ExchangeContext(ctx, msg, t.config.Server); err != nil {
			return nil, err
		}
	}
	return ParseResponse(msg, resp)
}
