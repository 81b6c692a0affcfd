package logic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookup/internal/domain"
)

func fruits() []domain.Item {
	return []domain.Item{
		{"title": "Apple"},
		{"title": "Banana"},
		{"title": "Grape"},
	}
}

func titles(items []domain.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, _ := domain.DisplayValue(it, "title")
		out = append(out, s)
	}
	return out
}

// isOrderedSubsequence reports whether sub appears in full in the same order,
// comparing records by identity
func isOrderedSubsequence(sub, full []domain.Item) bool {
	j := 0
	for _, it := range sub {
		for j < len(full) && !domain.SameItem(full[j], it) {
			j++
		}
		if j == len(full) {
			return false
		}
		j++
	}
	return true
}

func TestSubstringFilter(t *testing.T) {
	data := fruits()
	s := Substring{DisplayKey: "title"}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Apple", "Banana", "Grape"}},
		{"an", []string{"Banana"}},
		{"AN", []string{"Banana"}},
		{"ap", []string{"Apple", "Grape"}},
		{"e", []string{"Apple", "Grape"}},
		{"pear", []string{}},
		{"apple pie", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(s.Filter(tt.query, data)))
		})
	}
}

func TestSubstringFilterProperties(t *testing.T) {
	data := []domain.Item{
		{"title": "Alpha"},
		{"title": "alphabet"},
		{"name": "no title here"},
		{"title": nil},
		{"title": ""},
		{"title": "BETA"},
		{"title": 1234},
		{"title": "gamma ALPHA"},
	}
	s := Substring{DisplayKey: "title"}

	queries := []string{"", "a", "AL", "alpha", "Beta", "23", "zz", " "}
	for _, q := range queries {
		got := s.Filter(q, data)
		assert.True(t, isOrderedSubsequence(got, data), "query %q must yield an ordered subsequence", q)

		lower := s.Filter(strings.ToLower(q), data)
		upper := s.Filter(strings.ToUpper(q), data)
		assert.Equal(t, len(lower), len(upper), "query %q must be case-insensitive", q)
		for i := range lower {
			assert.True(t, domain.SameItem(lower[i], upper[i]))
		}
	}

	// Empty query is the identity, falsy display fields included
	all := s.Filter("", data)
	require.Len(t, all, len(data))
	for i := range data {
		assert.True(t, domain.SameItem(data[i], all[i]))
	}
}

func TestSubstringFilterFalsyFieldsNeverMatch(t *testing.T) {
	data := []domain.Item{
		{"title": nil},
		{"title": false},
		{"other": "match"},
		nil,
	}
	s := Substring{DisplayKey: "title"}

	assert.NotPanics(t, func() {
		assert.Empty(t, s.Filter("a", data))
	})
}

func TestSubstringFilterCustomDisplayKey(t *testing.T) {
	data := []domain.Item{
		{"title": "ignored", "name": "Carrot"},
		{"title": "carrot", "name": "Leek"},
	}
	s := Substring{DisplayKey: "name"}

	got := s.Filter("car", data)
	require.Len(t, got, 1)
	assert.True(t, domain.SameItem(data[0], got[0]))
}

func TestSubstringFilterDefaultsDisplayKey(t *testing.T) {
	got := Substring{}.Filter("ban", fruits())
	assert.Equal(t, []string{"Banana"}, titles(got))
}

func TestFuzzyFilter(t *testing.T) {
	data := []domain.Item{
		{"title": "Grape"},
		{"title": "Green apple"},
		{"title": "Banana"},
		{"title": nil},
	}
	f := Fuzzy{DisplayKey: "title"}

	t.Run("EmptyQuery_IsIdentity", func(t *testing.T) {
		got := f.Filter("", data)
		require.Len(t, got, len(data))
		for i := range data {
			assert.True(t, domain.SameItem(data[i], got[i]))
		}
	})

	t.Run("NonMatches_Excluded", func(t *testing.T) {
		got := titles(f.Filter("gpe", data))
		assert.Contains(t, got, "Grape")
		assert.Contains(t, got, "Green apple")
		assert.NotContains(t, got, "Banana")
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		assert.Equal(t, titles(f.Filter("BAN", data)), titles(f.Filter("ban", data)))
	})

	t.Run("NoMatch_ReturnsEmpty", func(t *testing.T) {
		assert.Empty(t, f.Filter("xyz", data))
	})

	t.Run("AccentedQuery_Matches", func(t *testing.T) {
		drinks := []domain.Item{{"title": "Café"}, {"title": "Tea"}}
		assert.Equal(t, []string{"Café"}, titles(f.Filter("café", drinks)))
		assert.Equal(t, []string{"Café"}, titles(f.Filter("CAFÉ", drinks)))
		assert.Equal(t, []string{"Café"}, titles(f.Filter("cafe", drinks)))
	})
}

func TestStrategyFunc(t *testing.T) {
	var gotQuery string
	var gotItems []domain.Item
	none := StrategyFunc(func(q string, items []domain.Item) []domain.Item {
		gotQuery, gotItems = q, items
		return nil
	})

	data := fruits()
	assert.Empty(t, none.Filter("kiwi", data))
	assert.Equal(t, "kiwi", gotQuery)
	assert.Len(t, gotItems, 3)
}

func TestNewStrategy(t *testing.T) {
	assert.IsType(t, Fuzzy{}, NewStrategy("fuzzy", "title"))
	assert.IsType(t, Fuzzy{}, NewStrategy("FZF", "title"))
	assert.IsType(t, Substring{}, NewStrategy("substring", "title"))
	assert.IsType(t, Substring{}, NewStrategy("", "title"))
	assert.Equal(t, Substring{DisplayKey: "name"}, NewStrategy("bogus", "name"))
}
