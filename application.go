// SPDX-License-Identifier: GPL-3.0-or-later

package radiodns

import (
	"slices"

	"github.com/miekg/dns"
)

// Well-known RadioDNS application identifiers.
//
// The [*Resolver] accepts any application identifier.
const (
	// ApplicationRadioEPG is the electronic programme guide (ETSI TS 102 818).
	ApplicationRadioEPG = "radioepg"

	// ApplicationRadioSPI is the service and programme information (ETSI TS 102 818).
	ApplicationRadioSPI = "radiospi"

	// ApplicationRadioVIS is the visual companion over STOMP (ETSI TS 101 499).
	ApplicationRadioVIS = "radiovis"

	// ApplicationRadioVISHTTP is the visual companion over HTTP (ETSI TS 101 499).
	ApplicationRadioVISHTTP = "radiovis-http"

	// ApplicationRadioTag is the tagging service (RadioTAG).
	ApplicationRadioTag = "radiotag"
)

// Record is the location of an application endpoint, as
// published by one SRV record.
type Record struct {
	// TTL is the record time to live in seconds.
	TTL uint32 `json:"ttl" yaml:"ttl"`

	// Priority is the SRV priority (lower is preferred).
	Priority uint16 `json:"priority" yaml:"priority"`

	// Weight is the SRV weight among records with the same priority.
	Weight uint16 `json:"weight" yaml:"weight"`

	// Port is the TCP port of the endpoint.
	Port uint16 `json:"port" yaml:"port"`

	// Target is the hostname of the endpoint.
	Target string `json:"target" yaml:"target"`
}

func newRecord(srv *dns.SRV) Record {
	return Record{
		TTL:      srv.Hdr.Ttl,
		Priority: srv.Priority,
		Weight:   srv.Weight,
		Port:     srv.Port,
		Target:   srv.Target,
	}
}

// Application is the result of resolving an application for
// a broadcast service.
//
// Construct using [*Resolver.ResolveApplication] or [*Resolver.Resolve].
type Application struct {
	id      string
	records []Record
}

func newApplication(id string, records []Record) *Application {
	return &Application{id: id, records: records}
}

// ID returns the application identifier as provided by the caller.
func (a *Application) ID() string {
	return a.id
}

// Records returns a copy of the application records in the same
// order in which they appear in the DNS response.
func (a *Application) Records() []Record {
	return slices.Clone(a.records)
}

// Len returns the number of records.
func (a *Application) Len() int {
	return len(a.records)
}
