// SPDX-License-Identifier: GPL-3.0-or-later

package radiodns

import (
	"regexp"
	"strings"
)

// RootDomain is the domain below which all canonical FQDNs live.
const RootDomain = "radiodns.org"

// Identifier identifies a broadcast service.
//
// The set of implementations is closed: [*FMService], [*AMService],
// [*DABService] and [*HDService]. Instances are immutable and can only be
// obtained through their constructors, which validate all the parameters.
type Identifier interface {
	// CanonicalFQDN returns the RadioDNS FQDN of the service
	// in lowercase and without the trailing dot.
	CanonicalFQDN() string

	isIdentifier()
}

// identifierIsNil returns true for a nil interface and for a typed nil pointer.
func identifierIsNil(id Identifier) bool {
	switch v := id.(type) {
	case nil:
		return true
	case *FMService:
		return v == nil
	case *AMService:
		return v == nil
	case *DABService:
		return v == nil
	case *HDService:
		return v == nil
	default:
		return false
	}
}

// Patterns used to validate the identifier fields after lowercasing.
var (
	identifierHex1 = regexp.MustCompile(`^[0-9a-f]$`)
	identifierHex3 = regexp.MustCompile(`^[0-9a-f]{3}$`)
	identifierHex4 = regexp.MustCompile(`^[0-9a-f]{4}$`)
	identifierHex5 = regexp.MustCompile(`^[0-9a-f]{5}$`)

	// AM SIds have at least 6 digits.
	identifierHex6OrMore = regexp.MustCompile(`^[0-9a-f]{6,}$`)

	// DAB services use 16-bit SIds for audio and 32-bit SIds for data.
	identifierDABSId = regexp.MustCompile(`^(?:[0-9a-f]{4}|[0-9a-f]{8})$`)
)

// identifierParseHex lowercases value and checks it against pattern.
func identifierParseHex(field, value string, pattern *regexp.Regexp) (string, error) {
	if value == "" {
		return "", newMissingParameterError(field)
	}
	lower := strings.ToLower(value)
	if !pattern.MatchString(lower) {
		return "", newInvalidParameterError(field, value)
	}
	return lower, nil
}

// identifierJoin joins labels into a FQDN below [RootDomain].
func identifierJoin(labels ...string) string {
	return strings.Join(labels, ".") + "." + RootDomain
}
