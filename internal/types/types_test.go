package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryGrouping_Categories(t *testing.T) {
	g := CategoryGrouping{
		{Category: "Employment"},
		{Category: "Education"},
	}
	assert.Equal(t, []string{"Employment", "Education"}, g.Categories())
	assert.Empty(t, CategoryGrouping(nil).Categories())
}

func TestEntry_HasCategory(t *testing.T) {
	assert.True(t, Entry{Category: "Education"}.HasCategory())
	assert.False(t, Entry{}.HasCategory())
}

func TestSection_Available(t *testing.T) {
	assert.True(t, Section[string]{Status: SectionAvailable}.Available())
	assert.False(t, Section[string]{Status: SectionNotFound}.Available())
	assert.False(t, Section[string]{Status: SectionMalformed}.Available())
	assert.False(t, Section[string]{}.Available())
}

func TestEntry_JSONOngoing(t *testing.T) {
	e := Entry{
		Title:       "Data Engineer",
		Institution: "Dalix",
		Start:       time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"end"`)
	assert.Contains(t, string(data), `"start":"2024-07-01T00:00:00Z"`)

	var decoded Entry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded.End)
	assert.True(t, e.Start.Equal(decoded.Start))
}
