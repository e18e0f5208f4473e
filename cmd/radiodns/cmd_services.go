// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"

	"github.com/bassosimone/radiodns"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// hexFlag registers a string flag holding a hex identifier field.
func hexFlag(fs *pflag.FlagSet, p *string, name, digits, usage string) {
	fs.StringVar(p, name, "", fmt.Sprintf("%s (%s hex digits)", usage, digits))
}

func newCmdFM(flags *globalFlags, newTransport newTransportFunc) *cobra.Command {
	var gcc, pi string
	var frequency float64
	cmd := &cobra.Command{
		Use:     "fm",
		Short:   "Look up an FM/RDS service",
		Example: "  radiodns fm --gcc ce1 --pi c586 --frequency 95.8 --app radioepg",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := radiodns.NewFMService(gcc, pi, frequency)
			if err != nil {
				return err
			}
			return runLookup(cmd, flags, newTransport, id)
		},
	}
	fs := cmd.Flags()
	hexFlag(fs, &gcc, "gcc", "3", "Global country code")
	hexFlag(fs, &pi, "pi", "4", "Programme identification code")
	fs.Float64Var(&frequency, "frequency", 0, "Frequency in MHz (e.g. 95.8)")
	return cmd
}

func newCmdAM(flags *globalFlags, newTransport newTransportFunc) *cobra.Command {
	var kind, sid string
	cmd := &cobra.Command{
		Use:     "am",
		Short:   "Look up a DRM or AMSS service",
		Example: "  radiodns am --type drm --sid 3aba12",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := radiodns.NewAMService(kind, sid)
			if err != nil {
				return err
			}
			return runLookup(cmd, flags, newTransport, id)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&kind, "type", radiodns.AMTypeDRM, "Service type (drm|amss)")
	hexFlag(fs, &sid, "sid", "6 or more", "Service identifier")
	return cmd
}

func newCmdDAB(flags *globalFlags, newTransport newTransportFunc) *cobra.Command {
	var gcc, eid, sid, scids, uatype string
	cmd := &cobra.Command{
		Use:     "dab",
		Short:   "Look up a DAB service component",
		Example: "  radiodns dab --gcc ce1 --eid c181 --sid c479 --scids 0 --app radiovis",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				id  *radiodns.DABService
				err error
			)
			if cmd.Flags().Changed("uatype") {
				id, err = radiodns.NewDABServiceWithUAType(gcc, eid, sid, scids, uatype)
			} else {
				id, err = radiodns.NewDABService(gcc, eid, sid, scids)
			}
			if err != nil {
				return err
			}
			return runLookup(cmd, flags, newTransport, id)
		},
	}
	fs := cmd.Flags()
	hexFlag(fs, &gcc, "gcc", "3", "Global country code")
	hexFlag(fs, &eid, "eid", "4", "Ensemble identifier")
	hexFlag(fs, &sid, "sid", "4 or 8", "Service identifier")
	hexFlag(fs, &scids, "scids", "1", "Service component identifier within the service")
	hexFlag(fs, &uatype, "uatype", "3", "OPTIONAL user application type")
	return cmd
}

func newCmdHD(flags *globalFlags, newTransport newTransportFunc) *cobra.Command {
	var tx, cc, mid string
	cmd := &cobra.Command{
		Use:     "hd",
		Short:   "Look up an HD Radio service",
		Example: "  radiodns hd --tx 12345 --cc 0a1 --mid 2",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				id  *radiodns.HDService
				err error
			)
			if cmd.Flags().Changed("mid") {
				id, err = radiodns.NewHDServiceWithMID(tx, cc, mid)
			} else {
				id, err = radiodns.NewHDService(tx, cc)
			}
			if err != nil {
				return err
			}
			return runLookup(cmd, flags, newTransport, id)
		},
	}
	fs := cmd.Flags()
	hexFlag(fs, &tx, "tx", "5", "Transmitter identifier")
	hexFlag(fs, &cc, "cc", "3", "Country code")
	hexFlag(fs, &mid, "mid", "1", "OPTIONAL multicast SPS channel identifier")
	return cmd
}

// newCmdApplications returns a command listing the well-known applications.
func newCmdApplications() *cobra.Command {
	return &cobra.Command{
		Use:   "applications",
		Short: "List the well-known application identifiers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, app := range []string{
				radiodns.ApplicationRadioEPG,
				radiodns.ApplicationRadioSPI,
				radiodns.ApplicationRadioVIS,
				radiodns.ApplicationRadioVISHTTP,
				radiodns.ApplicationRadioTag,
			} {
				fmt.Fprintln(cmd.OutOrStdout(), app)
			}
		},
	}
}
