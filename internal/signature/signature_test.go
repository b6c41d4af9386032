// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

package signature

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		eax      uint32
		expected Raw
	}{
		{"zero", 0x0, Raw{}},
		{"pentium pro", 0x00000619, Raw{Family: 6, Model: 1, Stepping: 9}},
		{"skylake-sp", 0x00050654, Raw{Family: 6, ExtendedModel: 5, Model: 5, Stepping: 4}},
		{"raven ridge", 0x00810F10, Raw{ExtendedFamily: 8, Family: 15, ExtendedModel: 1, Model: 1, Stepping: 0}},
		{"zen4 raphael", 0x00A60F12, Raw{ExtendedFamily: 10, Family: 15, ExtendedModel: 6, Model: 1, Stepping: 2}},
		{"overdrive", 0x00001532, Raw{Family: 5, Model: 3, Stepping: 2, Type: TypeOverDrive}},
		{"all ones", 0xFFFFFFFF, Raw{ExtendedFamily: 0xFF, Family: 0xF, ExtendedModel: 0xF, Model: 0xF, Stepping: 0xF, Type: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decode(tt.eax))
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	// bits 14-15 and 28-31 are reserved and are not part of the signature
	const definedBits = 0x0FFF3FFF
	rng := rand.New(rand.NewSource(1))
	for range 10000 {
		word := rng.Uint32() & definedBits
		require.Equal(t, word, Encode(Decode(word)), "word %#08x", word)
	}
	for _, word := range []uint32{0, definedBits, 0x00000619, 0x00810F10} {
		assert.Equal(t, word, Encode(Decode(word)))
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name     string
		raw      Raw
		expected Display
	}{
		{
			name:     "family 0xF adds extended family and model",
			raw:      Raw{ExtendedFamily: 8, Family: 0xF, ExtendedModel: 1, Model: 1},
			expected: Display{Family: 0x17, Model: 0x11},
		},
		{
			name:     "family 6 prepends extended model only",
			raw:      Raw{ExtendedFamily: 3, Family: 6, ExtendedModel: 5, Model: 5, Stepping: 7},
			expected: Display{Family: 6, Model: 0x55, Stepping: 7},
		},
		{
			name:     "family 5 ignores extended fields",
			raw:      Raw{ExtendedFamily: 1, Family: 5, ExtendedModel: 2, Model: 4, Stepping: 3},
			expected: Display{Family: 5, Model: 4, Stepping: 3},
		},
		{
			name:     "family 4",
			raw:      Raw{Family: 4, ExtendedModel: 9, Model: 8},
			expected: Display{Family: 4, Model: 8},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.raw.Display())
		})
	}
}

func TestDisplayRule(t *testing.T) {
	for family := uint32(0); family <= MaxFamily; family++ {
		for ext := uint32(0); ext <= 0xF; ext++ {
			raw := Raw{ExtendedFamily: ext * 3, Family: family, ExtendedModel: ext, Model: 7}
			d := raw.Display()
			if family == MaxFamily {
				assert.Equal(t, family+raw.ExtendedFamily, d.Family)
			} else {
				assert.Equal(t, family, d.Family)
			}
			if family != 6 && family != MaxFamily {
				assert.Equal(t, raw.Model, d.Model)
			}
		}
	}
}

func TestStrings(t *testing.T) {
	raw := Decode(0x00A60F12)
	assert.Equal(t, "(10, 15, 6, 1, 2)", raw.String())
	assert.Equal(t, "Family 19h, Model 61h, Stepping 2h", raw.Display().String())
	assert.False(t, raw.IsZero())
	assert.True(t, Raw{}.IsZero())
	assert.True(t, Decode(0x00001532).IsOverDrive())
}
