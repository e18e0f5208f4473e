// SPDX-License-Identifier: GPL-3.0-or-later

package radiodns

import (
	"fmt"
	"math"
	"strconv"
)

// The FM broadcast band in MHz (inclusive).
const (
	FMMinFrequency = 76.0
	FMMaxFrequency = 108.0
)

// FMService identifies an FM/RDS service.
//
// Construct using [NewFMService].
type FMService struct {
	gcc       string
	pi        string
	frequency float64
}

var _ Identifier = &FMService{}

// NewFMService validates the FM parameters and returns a new [*FMService].
//
// The gcc is the 3-hex-digit global country code, the pi is the 4-hex-digit
// programme identification code and the frequency is in MHz and must be
// within [FMMinFrequency] and [FMMaxFrequency].
func NewFMService(gcc, pi string, frequency float64) (*FMService, error) {
	gcc, err := identifierParseHex("gcc", gcc, identifierHex3)
	if err != nil {
		return nil, err
	}
	pi, err = identifierParseHex("pi", pi, identifierHex4)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(frequency) || frequency < FMMinFrequency || frequency > FMMaxFrequency {
		return nil, newInvalidParameterError("frequency", strconv.FormatFloat(frequency, 'f', -1, 64))
	}
	return &FMService{gcc: gcc, pi: pi, frequency: frequency}, nil
}

// GCC returns the lowercase global country code.
func (s *FMService) GCC() string {
	return s.gcc
}

// PI returns the lowercase programme identification code.
func (s *FMService) PI() string {
	return s.pi
}

// Frequency returns the frequency in MHz.
func (s *FMService) Frequency() float64 {
	return s.frequency
}

// CanonicalFQDN implements [Identifier].
//
// The frequency label is the frequency in units of 10 kHz, zero-padded
// to five digits (e.g., 95.8 MHz becomes 09580).
func (s *FMService) CanonicalFQDN() string {
	// Round to absorb the binary representation error (e.g., 97.7*100).
	freq := int(math.Round(s.frequency * 100))
	return identifierJoin(fmt.Sprintf("%05d", freq), s.pi, s.gcc, "fm")
}

// String returns the canonical FQDN.
func (s *FMService) String() string {
	return s.CanonicalFQDN()
}

func (s *FMService) isIdentifier() {}
