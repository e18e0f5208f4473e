// SPDX-License-Identifier: GPL-3.0-or-later

package radiodns

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireParameterError checks that err is a [*ParameterError]
// wrapping target for the given field.
func requireParameterError(t *testing.T, err error, target error, field string) {
	t.Helper()
	require.ErrorIs(t, err, target)
	var perr *ParameterError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, field, perr.Field)
}

func TestNewFMService(t *testing.T) {
	tests := []struct {
		name      string
		gcc       string
		pi        string
		frequency float64
		expected  string
		err       error
		field     string
	}{
		{
			name:      "Valid",
			gcc:       "0e1",
			pi:        "c201",
			frequency: 106.5,
			expected:  "10650.c201.0e1.fm.radiodns.org",
		},
		{
			name:      "UppercaseInput",
			gcc:       "CE1",
			pi:        "C586",
			frequency: 95.8,
			expected:  "09580.c586.ce1.fm.radiodns.org",
		},
		{
			name:      "FloatingPointRounding",
			gcc:       "ce1",
			pi:        "c479",
			frequency: 97.7,
			expected:  "09770.c479.ce1.fm.radiodns.org",
		},
		{
			name:      "LowerBandEdge",
			gcc:       "0e1",
			pi:        "c201",
			frequency: FMMinFrequency,
			expected:  "07600.c201.0e1.fm.radiodns.org",
		},
		{
			name:      "UpperBandEdge",
			gcc:       "0e1",
			pi:        "c201",
			frequency: FMMaxFrequency,
			expected:  "10800.c201.0e1.fm.radiodns.org",
		},
		{"MissingGCC", "", "c201", 106.5, "", ErrMissingParameter, "gcc"},
		{"MissingPI", "0e1", "", 106.5, "", ErrMissingParameter, "pi"},
		{"GCCTooShort", "e1", "c201", 106.5, "", ErrInvalidParameter, "gcc"},
		{"GCCTooLong", "0e10", "c201", 106.5, "", ErrInvalidParameter, "gcc"},
		{"GCCNotHex", "0g1", "c201", 106.5, "", ErrInvalidParameter, "gcc"},
		{"PITooShort", "0e1", "c20", 106.5, "", ErrInvalidParameter, "pi"},
		{"PITooLong", "0e1", "c2011", 106.5, "", ErrInvalidParameter, "pi"},
		{"PINotHex", "0e1", "c2z1", 106.5, "", ErrInvalidParameter, "pi"},
		{"FrequencyBelowBand", "0e1", "c201", 75.9, "", ErrInvalidParameter, "frequency"},
		{"FrequencyAboveBand", "0e1", "c201", 108.1, "", ErrInvalidParameter, "frequency"},
		{"FrequencyZero", "0e1", "c201", 0, "", ErrInvalidParameter, "frequency"},
		{"FrequencyNaN", "0e1", "c201", math.NaN(), "", ErrInvalidParameter, "frequency"},
		{"FrequencyInf", "0e1", "c201", math.Inf(1), "", ErrInvalidParameter, "frequency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewFMService(tt.gcc, tt.pi, tt.frequency)
			if tt.err != nil {
				requireParameterError(t, err, tt.err, tt.field)
				require.Nil(t, s)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, s.CanonicalFQDN())
			require.Equal(t, tt.expected, s.String())
			require.Equal(t, strings.ToLower(tt.gcc), s.GCC())
			require.Equal(t, strings.ToLower(tt.pi), s.PI())
			require.Equal(t, tt.frequency, s.Frequency())
		})
	}
}

func TestNewAMService(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		sid      string
		expected string
		err      error
		field    string
	}{
		{"DRM", "drm", "3aba12", "3aba12.drm.radiodns.org", nil, ""},
		{"AMSS", "amss", "4ABC12", "4abc12.amss.radiodns.org", nil, ""},
		{"UppercaseType", "DRM", "3aba12", "3aba12.drm.radiodns.org", nil, ""},
		{"MissingType", "", "3aba12", "", ErrMissingParameter, "type"},
		{"MissingSId", "drm", "", "", ErrMissingParameter, "sid"},
		{"InvalidType", "fm", "3aba12", "", ErrInvalidParameter, "type"},
		{"SIdTooShort", "drm", "3aba1", "", ErrInvalidParameter, "sid"},
		{"SIdSevenDigits", "drm", "3aba123", "3aba123.drm.radiodns.org", nil, ""},
		{"SIdEightDigits", "amss", "3ABA1234", "3aba1234.amss.radiodns.org", nil, ""},
		{"SIdNotHexTail", "drm", "3aba12g", "", ErrInvalidParameter, "sid"},
		{"SIdNotHex", "amss", "3abx12", "", ErrInvalidParameter, "sid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewAMService(tt.kind, tt.sid)
			if tt.err != nil {
				requireParameterError(t, err, tt.err, tt.field)
				require.Nil(t, s)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, s.CanonicalFQDN())
			require.Equal(t, strings.ToLower(tt.kind), s.Type())
			require.Equal(t, strings.ToLower(tt.sid), s.SId())
		})
	}
}

func TestNewDABService(t *testing.T) {
	tests := []struct {
		name     string
		gcc      string
		eid      string
		sid      string
		scids    string
		expected string
		err      error
		field    string
	}{
		{"AudioSId", "0e1", "c479", "c479", "0", "0.c479.c479.0e1.dab.radiodns.org", nil, ""},
		{"DataSId", "de0", "1019", "e1c238c1", "2", "2.e1c238c1.1019.de0.dab.radiodns.org", nil, ""},
		{"UppercaseInput", "0E1", "C479", "C479", "A", "a.c479.c479.0e1.dab.radiodns.org", nil, ""},
		{"MissingGCC", "", "c479", "c479", "0", "", ErrMissingParameter, "gcc"},
		{"MissingEId", "0e1", "", "c479", "0", "", ErrMissingParameter, "eid"},
		{"MissingSId", "0e1", "c479", "", "0", "", ErrMissingParameter, "sid"},
		{"MissingSCIdS", "0e1", "c479", "c479", "", "", ErrMissingParameter, "scids"},
		{"GCCTooLong", "0e11", "c479", "c479", "0", "", ErrInvalidParameter, "gcc"},
		{"EIdTooShort", "0e1", "c47", "c479", "0", "", ErrInvalidParameter, "eid"},
		{"SIdFiveDigits", "0e1", "c479", "c4791", "0", "", ErrInvalidParameter, "sid"},
		{"SIdNineDigits", "0e1", "c479", "e1c238c10", "0", "", ErrInvalidParameter, "sid"},
		{"SIdNotHex", "0e1", "c479", "c47g", "0", "", ErrInvalidParameter, "sid"},
		{"SCIdSTooLong", "0e1", "c479", "c479", "00", "", ErrInvalidParameter, "scids"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewDABService(tt.gcc, tt.eid, tt.sid, tt.scids)
			if tt.err != nil {
				requireParameterError(t, err, tt.err, tt.field)
				require.Nil(t, s)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, s.CanonicalFQDN())
			require.Equal(t, strings.ToLower(tt.gcc), s.GCC())
			require.Equal(t, strings.ToLower(tt.eid), s.EId())
			require.Equal(t, strings.ToLower(tt.sid), s.SId())
			require.Equal(t, strings.ToLower(tt.scids), s.SCIdS())
			require.Empty(t, s.UAType())
		})
	}
}

func TestNewDABServiceWithUAType(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		s, err := NewDABServiceWithUAType("0e1", "c479", "c479", "0", "0A1")
		require.NoError(t, err)
		require.Equal(t, "0a1", s.UAType())
		require.Equal(t, "0a1.0.c479.c479.0e1.dab.radiodns.org", s.CanonicalFQDN())
	})

	t.Run("MissingUAType", func(t *testing.T) {
		s, err := NewDABServiceWithUAType("0e1", "c479", "c479", "0", "")
		requireParameterError(t, err, ErrMissingParameter, "uatype")
		require.Nil(t, s)
	})

	t.Run("InvalidUAType", func(t *testing.T) {
		for _, uatype := range []string{"a1", "0a12", "0x1"} {
			s, err := NewDABServiceWithUAType("0e1", "c479", "c479", "0", uatype)
			requireParameterError(t, err, ErrInvalidParameter, "uatype")
			require.Nil(t, s)
		}
	})

	t.Run("InvalidBaseParameter", func(t *testing.T) {
		s, err := NewDABServiceWithUAType("0e1", "c479", "c479", "x", "0a1")
		requireParameterError(t, err, ErrInvalidParameter, "scids")
		require.Nil(t, s)
	})
}

func TestNewHDService(t *testing.T) {
	tests := []struct {
		name     string
		tx       string
		cc       string
		expected string
		err      error
		field    string
	}{
		{"Valid", "12345", "0a1", "12345.0a1.hd.radiodns.org", nil, ""},
		{"UppercaseInput", "ABCDE", "0A1", "abcde.0a1.hd.radiodns.org", nil, ""},
		{"MissingTX", "", "0a1", "", ErrMissingParameter, "tx"},
		{"MissingCC", "12345", "", "", ErrMissingParameter, "cc"},
		{"TXTooShort", "1234", "0a1", "", ErrInvalidParameter, "tx"},
		{"TXTooLong", "123456", "0a1", "", ErrInvalidParameter, "tx"},
		{"CCNotHex", "12345", "0z1", "", ErrInvalidParameter, "cc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewHDService(tt.tx, tt.cc)
			if tt.err != nil {
				requireParameterError(t, err, tt.err, tt.field)
				require.Nil(t, s)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, s.CanonicalFQDN())
			require.Equal(t, strings.ToLower(tt.tx), s.TX())
			require.Equal(t, strings.ToLower(tt.cc), s.CC())
			require.Empty(t, s.MId())
		})
	}
}

func TestNewHDServiceWithMID(t *testing.T) {
	s, err := NewHDServiceWithMID("12345", "0a1", "2")
	require.NoError(t, err)
	require.Equal(t, "2", s.MId())
	require.Equal(t, "2.12345.0a1.hd.radiodns.org", s.CanonicalFQDN())

	s, err = NewHDServiceWithMID("12345", "0a1", "")
	requireParameterError(t, err, ErrMissingParameter, "mid")
	require.Nil(t, s)

	s, err = NewHDServiceWithMID("12345", "0a1", "12")
	requireParameterError(t, err, ErrInvalidParameter, "mid")
	require.Nil(t, s)
}

// TestIdentifierHexFields checks every fixed-width hex field against
// all the 16 digits in both cases and against all the other ASCII bytes.
func TestIdentifierHexFields(t *testing.T) {
	build := map[string]func(digit string) (Identifier, error){
		"fm.gcc": func(d string) (Identifier, error) { return NewFMService(d+"e1", "c201", 100) },
		"fm.pi":  func(d string) (Identifier, error) { return NewFMService("0e1", "c20"+d, 100) },
		"am.sid": func(d string) (Identifier, error) { return NewAMService("drm", "3aba1"+d) },
		"dab.scids": func(d string) (Identifier, error) {
			return NewDABService("0e1", "c479", "c479", d)
		},
		"dab.sid": func(d string) (Identifier, error) {
			return NewDABService("0e1", "c479", "e1c238c"+d, "0")
		},
		"hd.mid": func(d string) (Identifier, error) { return NewHDServiceWithMID("12345", "0a1", d) },
	}

	for field, fx := range build {
		t.Run(field, func(t *testing.T) {
			for c := 0x21; c < 0x7f; c++ {
				digit := string(rune(c))
				id, err := fx(digit)
				if strings.ContainsAny(strings.ToLower(digit), "0123456789abcdef") {
					require.NoError(t, err, digit)
					fqdn := id.CanonicalFQDN()
					require.Equal(t, strings.ToLower(fqdn), fqdn)
					continue
				}
				require.ErrorIs(t, err, ErrInvalidParameter, digit)
				require.Nil(t, id)
			}
		})
	}
}

func TestParameterError(t *testing.T) {
	_, err := NewAMService("fm", "3aba12")
	require.EqualError(t, err, `invalid parameter: type: "fm"`)

	_, err = NewHDService("", "0a1")
	require.EqualError(t, err, "missing parameter: tx")
}
