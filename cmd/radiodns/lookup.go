// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"errors"
	"fmt"

	"github.com/bassosimone/radiodns"
	"github.com/spf13/cobra"
)

// lookupResult is the output of a lookup.
type lookupResult struct {
	FQDN          string              `json:"fqdn" yaml:"fqdn"`
	Authoritative string              `json:"authoritative,omitempty" yaml:"authoritative,omitempty"`
	Error         string              `json:"error,omitempty" yaml:"error,omitempty"`
	Applications  []applicationResult `json:"applications,omitempty" yaml:"applications,omitempty"`
}

// applicationResult is the output of the resolution of one application.
type applicationResult struct {
	ID      string            `json:"id" yaml:"id"`
	Error   string            `json:"error,omitempty" yaml:"error,omitempty"`
	Records []radiodns.Record `json:"records,omitempty" yaml:"records,omitempty"`
}

// errLookupFailed means some resolution failed; details are in the output.
var errLookupFailed = errors.New("lookup failed")

// runLookup prints the canonical FQDN of id and resolves the
// applications requested with --app, if any.
func runLookup(cmd *cobra.Command, flags *globalFlags, newTransport newTransportFunc, id radiodns.Identifier) error {
	enc, err := newEncoder(flags.output)
	if err != nil {
		return err
	}

	result := &lookupResult{FQDN: id.CanonicalFQDN()}
	if len(flags.apps) < 1 {
		return enc(cmd.OutOrStdout(), result)
	}

	ctx := cmd.Context()
	logger := loggerFrom(ctx)
	resolver := radiodns.NewResolver(newTransport(radiodns.DNSTransportConfig{
		Server:  flags.server,
		Timeout: flags.timeout,
	}))
	resolver.Logger = logger
	resolver.Timeout = flags.timeout

	result.Authoritative, err = resolver.ResolveAuthoritative(ctx, id)
	if err != nil {
		logger.Warn("authoritative resolution failed", "fqdn", result.FQDN, "error", err)
		result.Error = err.Error()
		if err := enc(cmd.OutOrStdout(), result); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s", errLookupFailed, result.FQDN)
	}

	failed := false
	for _, appID := range flags.apps {
		ar := applicationResult{ID: appID}
		app, err := resolver.ResolveApplication(ctx, result.Authoritative, appID)
		if err != nil {
			logger.Warn("application resolution failed", "application", appID, "error", err)
			ar.Error = err.Error()
			failed = true
		} else {
			ar.Records = app.Records()
		}
		result.Applications = append(result.Applications, ar)
	}

	if err := enc(cmd.OutOrStdout(), result); err != nil {
		return err
	}
	if failed {
		return fmt.Errorf("%w: %s", errLookupFailed, result.FQDN)
	}
	return nil
}
