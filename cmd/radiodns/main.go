// SPDX-License-Identifier: GPL-3.0-or-later

// Command radiodns prints the RadioDNS FQDN of a broadcast
// service and optionally resolves its applications.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bassosimone/radiodns"
	"github.com/spf13/cobra"
)

// globalFlags contains the flags shared by all the subcommands.
type globalFlags struct {
	apps      []string
	logFormat string
	logLevel  string
	output    string
	server    string
	timeout   time.Duration
}

// newTransportFunc builds the transport; tests override it.
type newTransportFunc func(cfg radiodns.DNSTransportConfig) radiodns.Transport

func defaultNewTransport(cfg radiodns.DNSTransportConfig) radiodns.Transport {
	return radiodns.NewDNSTransport(cfg)
}

func newRootCmd(newTransport newTransportFunc) *cobra.Command {
	flags := &globalFlags{}
	defaults := radiodns.DefaultDNSTransportConfig()

	cmd := &cobra.Command{
		Use:   "radiodns",
		Short: "RadioDNS service discovery",
		Long: "Compute the RadioDNS FQDN of a broadcast service and, with --app,\n" +
			"resolve the authoritative FQDN and the SRV records of its applications.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringSliceVarP(&flags.apps, "app", "a", nil, "Application to resolve (e.g. radioepg, radiovis); repeatable")
	pf.StringVar(&flags.logFormat, "log-format", "text", "Log format (text|json)")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug|info|warn|error)")
	pf.StringVarP(&flags.output, "output", "o", "text", "Output format (text|json|yaml)")
	pf.StringVar(&flags.server, "server", defaults.Server, "DNS server HOST:PORT")
	pf.DurationVar(&flags.timeout, "timeout", defaults.Timeout, "Timeout of each DNS hop")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		logger, err := newLogger(c.ErrOrStderr(), flags.logFormat, flags.logLevel)
		if err != nil {
			return err
		}
		c.SetContext(withLogger(c.Context(), logger))
		return nil
	}

	cmd.AddCommand(
		newCmdFM(flags, newTransport),
		newCmdAM(flags, newTransport),
		newCmdDAB(flags, newTransport),
		newCmdHD(flags, newTransport),
		newCmdApplications(),
	)
	return cmd
}

func main() {
	root := newRootCmd(defaultNewTransport)
	root.SetContext(context.Background())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "radiodns: %s\n", err)
		os.Exit(1)
	}
}
