package logic

import (
	"sort"
	"strings"

	"github.com/junegunn/fzf/src/algo"
	fzfutil "github.com/junegunn/fzf/src/util"

	"lookup/internal/domain"
)

func init() {
	algo.Init("default")
}

// FilterStrategy turns the current query and the full data set into the
// ordered items to display. The widget uses the returned slice verbatim.
type FilterStrategy interface {
	Filter(query string, items []domain.Item) []domain.Item
}

// StrategyFunc adapts a plain function to FilterStrategy
type StrategyFunc func(query string, items []domain.Item) []domain.Item

// Filter calls f
func (f StrategyFunc) Filter(query string, items []domain.Item) []domain.Item {
	return f(query, items)
}

// Substring is the default strategy: case-insensitive contiguous match on
// the display field. Items whose display field is missing or falsy never
// match a non-empty query.
type Substring struct {
	DisplayKey string
}

// Filter returns the matching items in their original order
func (s Substring) Filter(query string, items []domain.Item) []domain.Item {
	if query == "" {
		return items
	}

	needle := strings.ToLower(query)
	matches := make([]domain.Item, 0, len(items))
	for _, item := range items {
		text, ok := domain.DisplayValue(item, s.key())
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(text), needle) {
			matches = append(matches, item)
		}
	}
	return matches
}

func (s Substring) key() string {
	if s.DisplayKey == "" {
		return domain.DefaultDisplayKey
	}
	return s.DisplayKey
}

// Fuzzy scores the display field with fzf's matcher and orders matches by
// score, keeping the original order between equal scores
type Fuzzy struct {
	DisplayKey string
}

// Filter returns the fuzzy matches, best first
func (f Fuzzy) Filter(query string, items []domain.Item) []domain.Item {
	if query == "" {
		return items
	}

	key := f.DisplayKey
	if key == "" {
		key = domain.DefaultDisplayKey
	}
	// The matcher folds accents in the text only; fold the pattern the same way
	pattern := algo.NormalizeRunes([]rune(strings.ToLower(query)))

	type scored struct {
		item  domain.Item
		score int32
	}
	var matches []scored
	for _, item := range items {
		text, ok := domain.DisplayValue(item, key)
		if !ok {
			continue
		}
		chars := fzfutil.ToChars([]byte(text))
		res, _ := algo.FuzzyMatchV2(false, true, true, &chars, pattern, false, nil)
		if res.Start < 0 {
			continue
		}
		matches = append(matches, scored{item: item, score: int32(res.Score)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]domain.Item, len(matches))
	for i, m := range matches {
		out[i] = m.item
	}
	return out
}

// NewStrategy returns the named built-in strategy.
// Unknown names fall back to Substring.
func NewStrategy(name, displayKey string) FilterStrategy {
	switch strings.ToLower(name) {
	case "fuzzy", "fzf":
		return Fuzzy{DisplayKey: displayKey}
	default:
		return Substring{DisplayKey: displayKey}
	}
}
