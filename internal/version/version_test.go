// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"latest", "latest", false},
		{"", "latest", false},
		{"1", "1", false},
		{"1.2", "1.2", false},
		{"1.2.3", "1.2.3", false},
		{"0.9", "0.9", false},
		{"1.02", "1.2", false},
		{"01", "1", false},
		{"1.2.3.4", "", true},
		{"1.x", "", true},
		{"v1.2", "", true},
		{"+1", "", true},
		{"-1", "", true},
		{"1.", "", true},
		{"one", "", true},
	}
	for _, tt := range tests {
		v, err := Parse(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrMalformed, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, v.String())
	}
}

func TestLatestSentinel(t *testing.T) {
	v := MustParse("latest")
	assert.True(t, v.IsLatest())

	// Latest satisfies every minimum but never a maximum or exact bound.
	assert.True(t, v.AtLeast(MustParse("1.2")))
	assert.False(t, v.AtMost(MustParse("99")))
	assert.False(t, v.Exactly(MustParse("1.0")))
}

func TestAtLeast(t *testing.T) {
	min := MustParse("1.2")

	assert.False(t, MustParse("1.1").AtLeast(min))
	assert.True(t, MustParse("1.2").AtLeast(min))
	assert.True(t, MustParse("1.3").AtLeast(min))
	assert.True(t, MustParse("2.0").AtLeast(min))
	assert.True(t, MustParse("1.2.0").AtLeast(min))

	// A wildcard component satisfies the remaining bound positions.
	assert.True(t, MustParse("1").AtLeast(min))
}

func TestAtMost(t *testing.T) {
	max := MustParse("1.1")

	assert.True(t, MustParse("1.1").AtMost(max))
	assert.True(t, MustParse("1.0").AtMost(max))
	assert.False(t, MustParse("1.2").AtMost(max))
	assert.False(t, MustParse("2").AtMost(max))
	assert.True(t, MustParse("1.1.9").AtMost(MustParse("1.1")))
	assert.True(t, MustParse("1").AtMost(max))
}

func TestExactly(t *testing.T) {
	assert.True(t, MustParse("1.0").Exactly(MustParse("1.0")))
	assert.True(t, MustParse("1").Exactly(MustParse("1.0")))
	assert.True(t, MustParse("1.0.5").Exactly(MustParse("1.0")))
	assert.False(t, MustParse("1.1").Exactly(MustParse("1.0")))
	assert.False(t, MustParse("2.0").Exactly(MustParse("1.0")))
}

func TestMustParsePanicsOnBadBound(t *testing.T) {
	assert.Panics(t, func() { MustParse("not-a-version") })
}
