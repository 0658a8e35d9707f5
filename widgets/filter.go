package widgets

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/choices/group"
)

type scoredItem struct {
	item  group.Item
	score int
	dist  int
	index int
}

// VisibleItems narrows items to those matching the query, best match
// first. Matching is subsequence-based; ties break on levenshtein distance
// to the query, then on caller order. The query only affects visibility;
// selection state is untouched by filtering.
func VisibleItems(items []group.Item, query string) []group.Item {
	q := strings.TrimSpace(query)
	if q == "" {
		return append([]group.Item(nil), items...)
	}

	scored := make([]scoredItem, 0, len(items))
	for idx, item := range items {
		matched, score := fuzzyMatchScore(item.Label, q)
		if !matched {
			continue
		}
		scored = append(scored, scoredItem{
			item:  item,
			score: score,
			dist:  levenshtein.ComputeDistance(strings.ToLower(item.Label), strings.ToLower(q)),
			index: idx,
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		if scored[i].dist != scored[j].dist {
			return scored[i].dist < scored[j].dist
		}
		return scored[i].index < scored[j].index
	})

	out := make([]group.Item, 0, len(scored))
	for _, row := range scored {
		out = append(out, row.item)
	}
	return out
}

// fuzzyMatchScore matches query as a subsequence of label. Prefix and
// adjacency matches score higher; an exact label match scores highest.
func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower)
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
