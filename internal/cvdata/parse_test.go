package cvdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		text  bool
		want  string
	}{
		{"serial number cell", "44621", false, "2022-03-01"},
		{"serial stored as text", "44621", true, "2022-03-01"},
		{"iso date", "2020-01-15", true, "2020-01-15"},
		{"german date", "31.12.2021", true, "2021-12-31"},
		{"short german date", "1.2.2021", true, "2021-02-01"},
		{"month and year with dot", "12.2020", true, "2020-12-01"},
		{"month and year with slash", "06/2019", true, "2019-06-01"},
		{"year only", "2020", true, "2020-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.value, tt.text, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, value := range []string{"soon", "inf", "NaN", "13.2020"} {
		t.Run(value, func(t *testing.T) {
			_, err := parseDate(value, true, false)
			assert.Error(t, err)
		})
	}
}

func TestParseRating(t *testing.T) {
	r, err := parseRating("")
	require.NoError(t, err)
	assert.Nil(t, r)

	r, err = parseRating("3,5")
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.InDelta(t, 3.5, *r, 1e-9)

	for _, value := range []string{"inf", "+Inf", "Infinity", "-inf", "NaN", "very good"} {
		_, err := parseRating(value)
		assert.Error(t, err, value)
	}
}
