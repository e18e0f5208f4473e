// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// encoderFunc writes a lookup result.
type encoderFunc func(w io.Writer, result *lookupResult) error

func newEncoder(format string) (encoderFunc, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return encodeText, nil
	case "json":
		return encodeJSON, nil
	case "yaml":
		return encodeYAML, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

func encodeJSON(w io.Writer, result *lookupResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func encodeYAML(w io.Writer, result *lookupResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result); err != nil {
		return err
	}
	return enc.Close()
}

// encodeText writes one line per field, using the zone
// file presentation format for the SRV records.
func encodeText(w io.Writer, result *lookupResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "fqdn: %s\n", result.FQDN)
	if result.Authoritative != "" {
		fmt.Fprintf(&b, "authoritative: %s\n", result.Authoritative)
	}
	if result.Error != "" {
		fmt.Fprintf(&b, "error: %s\n", result.Error)
	}
	for _, app := range result.Applications {
		if app.Error != "" {
			fmt.Fprintf(&b, "%s: error: %s\n", app.ID, app.Error)
			continue
		}
		for _, r := range app.Records {
			fmt.Fprintf(&b, "%s: %d IN SRV %d %d %d %s\n", app.ID, r.TTL, r.Priority, r.Weight, r.Port, r.Target)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
