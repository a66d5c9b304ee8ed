package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/jobboard/internal/domain"
)

func TestNameContains(t *testing.T) {
	tests := []struct {
		query string
		title string
		want  bool
	}{
		{"eng", "Engineer", true},
		{"ENG", "Senior engineer", true},
		{"  eng ", "Engineer", true},
		{"eng", "Designer", false},
		{"", "Anything", true},
		{"   ", "Anything", true},
		{"qa", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.query+"/"+tt.title, func(t *testing.T) {
			got := NameContains(tt.query).Match(job("1", tt.title))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNameContains_SpecialistDisplayName(t *testing.T) {
	ada := &domain.Specialist{ID: "1", FullName: "Ada Lovelace", Profession: "Engineer"}

	assert.True(t, NameContains("love").Match(ada))
	assert.False(t, NameContains("engineer").Match(ada), "only the display name is searched")
}

func TestFilters_IgnorePlaceholderName(t *testing.T) {
	nameless := &domain.Specialist{ID: "2", Email: "anon@example.com"}
	require.Equal(t, "Specialist", nameless.GetTitle())

	assert.False(t, NameContains("spec").Match(nameless))
	assert.False(t, FuzzyName("spec").Match(nameless))
	assert.True(t, NameContains("").Match(nameless), "a blank query still shows every item")
	assert.Nil(t, Suggest("spec", []*domain.Specialist{nameless}, 3))
}

func TestFuzzyName(t *testing.T) {
	assert.True(t, FuzzyName("egr").Match(job("1", "Engineer")))
	assert.True(t, FuzzyName("cafe").Match(job("1", "Café Manager")))
	assert.False(t, FuzzyName("xyz").Match(job("1", "Engineer")))
	assert.True(t, FuzzyName("").Match(job("1", "Engineer")))
}

func TestNewFilter(t *testing.T) {
	assert.IsType(t, nameContains{}, NewFilter(FilterModeSubstring, "eng"))
	assert.IsType(t, fuzzyName{}, NewFilter(FilterModeFuzzy, "eng"))
	assert.IsType(t, nameContains{}, NewFilter("", "eng"))
	assert.Equal(t, "eng", NewFilter(FilterModeFuzzy, "eng").Query())
}

func TestSuggest(t *testing.T) {
	items := []*domain.Job{job("1", "Engineer"), job("2", "Designer"), job("3", "Engineer")}

	assert.Equal(t, []string{"Engineer"}, Suggest("Enginer", items, 3))
	assert.Len(t, Suggest("xyz", items, 1), 1)
	assert.Nil(t, Suggest("", items, 3))
	assert.Nil(t, Suggest("eng", []*domain.Job{}, 3))
}
