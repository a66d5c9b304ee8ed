package listing

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/jobboard/internal/domain"
)

// Filter modes accepted in configuration
const (
	FilterModeSubstring = "substring"
	FilterModeFuzzy     = "fuzzy"
)

// Filter decides which items of a collection are visible.
// Filters only look at the item's name.
type Filter interface {
	Match(item domain.ListItem) bool
	Query() string
}

// MatchAll is the empty filter
var MatchAll Filter = nameContains{}

type nameContains struct {
	query  string
	needle string
}

// NameContains matches display names containing query, ignoring case.
// A blank query matches everything.
func NameContains(query string) Filter {
	return nameContains{
		query:  query,
		needle: strings.ToLower(strings.TrimSpace(query)),
	}
}

func (f nameContains) Query() string { return f.query }

func (f nameContains) Match(item domain.ListItem) bool {
	if f.needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(nameOf(item)), f.needle)
}

// nameOf is the text filters match against. It is the display title unless
// the item reports a raw name, so placeholder titles never match.
func nameOf(item domain.ListItem) string {
	if named, ok := item.(domain.Named); ok {
		return named.GetName()
	}
	return item.GetTitle()
}

type fuzzyName struct {
	query  string
	needle string
}

// FuzzyName matches display names containing the query's characters in order,
// ignoring case and diacritics. A blank query matches everything.
func FuzzyName(query string) Filter {
	return fuzzyName{query: query, needle: strings.TrimSpace(query)}
}

func (f fuzzyName) Query() string { return f.query }

func (f fuzzyName) Match(item domain.ListItem) bool {
	if f.needle == "" {
		return true
	}
	return fuzzy.MatchNormalizedFold(f.needle, nameOf(item))
}

// NewFilter builds the filter for a configured mode
func NewFilter(mode, query string) Filter {
	if mode == FilterModeFuzzy {
		return FuzzyName(query)
	}
	return NameContains(query)
}

// Suggest returns up to limit titles closest to query, for an empty result set
func Suggest[T domain.ListItem](query string, items []T, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || len(items) == 0 || limit <= 0 {
		return nil
	}

	titles := make([]string, 0, len(items))
	for _, item := range items {
		if name := nameOf(item); name != "" {
			titles = append(titles, name)
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	if len(ranks) == 0 {
		// Fall back to edit distance against every title
		ranks = make(fuzzy.Ranks, 0, len(titles))
		for i, title := range titles {
			ranks = append(ranks, fuzzy.Rank{
				Source:        query,
				Target:        title,
				Distance:      fuzzy.LevenshteinDistance(strings.ToLower(query), strings.ToLower(title)),
				OriginalIndex: i,
			})
		}
	}
	sort.Stable(ranks)

	seen := make(map[string]bool)
	var out []string
	for _, r := range ranks {
		if seen[r.Target] {
			continue
		}
		seen[r.Target] = true
		out = append(out, r.Target)
		if len(out) == limit {
			break
		}
	}
	return out
}
