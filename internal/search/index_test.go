package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhpark/safedine-backend/internal/app/model"
)

func strPtr(s string) *string { return &s }

func buildTestIndex(t *testing.T) Index {
	index := NewIndex(Config{})
	index.Rebuild([]model.Establishment{
		{
			ID:           "est-1",
			Name:         "Mario's Italian Restaurant",
			Address:      "123 Main Street",
			City:         "New York",
			BusinessType: model.BusinessTypeRestaurant,
			Cuisine:      strPtr("Italian"),
		},
		{
			ID:           "est-2",
			Name:         "Grand Plaza Hotel",
			Address:      "456 Broadway",
			City:         "New York",
			BusinessType: model.BusinessTypeHotel,
		},
		{
			ID:           "est-3",
			Name:         "Sunrise Cafe",
			Address:      "789 Brooklyn Ave",
			City:         "Brooklyn",
			BusinessType: model.BusinessTypeRestaurant,
			Cuisine:      strPtr("American"),
		},
	})
	return index
}

func matchIDs(matches []Match) []string {
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	return ids
}

func TestIndex_Search_ExactSubstring(t *testing.T) {
	index := buildTestIndex(t)

	matches := index.Search("Mario")
	require.Len(t, matches, 1)
	assert.Equal(t, "est-1", matches[0].ID)
	assert.Equal(t, 1.0, matches[0].Score)
}

func TestIndex_Search_Typo(t *testing.T) {
	index := buildTestIndex(t)

	// One edit away from the "mario" token
	matches := index.Search("Marios")
	require.NotEmpty(t, matches)
	assert.Equal(t, "est-1", matches[0].ID)
}

func TestIndex_Search_MatchesAcrossFields(t *testing.T) {
	index := buildTestIndex(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "city field",
			query: "Brooklyn",
			want:  []string{"est-3"},
		},
		{
			name:  "cuisine field",
			query: "Italian",
			want:  []string{"est-1"},
		},
		{
			name:  "shared city",
			query: "New York",
			want:  []string{"est-1", "est-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := index.Search(tt.query)
			assert.ElementsMatch(t, tt.want, matchIDs(matches))
		})
	}
}

func TestIndex_Search_ThresholdExcludesNonMatches(t *testing.T) {
	index := buildTestIndex(t)

	assert.Empty(t, index.Search("zzzzqqqq"))
}

func TestIndex_Search_ShortQueryReturnsNothing(t *testing.T) {
	index := buildTestIndex(t)

	assert.Nil(t, index.Search(""))
	assert.Nil(t, index.Search("a"))
	assert.Nil(t, index.Search("   m  "))
}

func TestIndex_Search_RankingPrefersCloserMatches(t *testing.T) {
	index := NewIndex(Config{})
	index.Rebuild([]model.Establishment{
		{ID: "exact", Name: "Sunrise Cafe", Address: "1 First St", City: "Queens"},
		{ID: "near", Name: "Sunrize Diner", Address: "2 Second St", City: "Queens"},
	})

	matches := index.Search("Sunrise")
	require.Len(t, matches, 2)
	assert.Equal(t, "exact", matches[0].ID)
	assert.Greater(t, matches[0].Score, matches[1].Score)
}

func TestIndex_Rebuild_ReplacesCorpus(t *testing.T) {
	index := buildTestIndex(t)
	require.NotEmpty(t, index.Search("Mario"))

	index.Rebuild([]model.Establishment{
		{ID: "est-9", Name: "Harbor View Hotel", Address: "9 Pier Rd", City: "Boston"},
	})

	assert.Empty(t, index.Search("Mario"))
	matches := index.Search("Harbor")
	require.Len(t, matches, 1)
	assert.Equal(t, "est-9", matches[0].ID)
}
