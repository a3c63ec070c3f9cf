package service

import "sort"

// topLimit caps ranked lists (top items, top themes).
const topLimit = 10

type rankedCount struct {
	key   string
	count int
}

// rankCounts orders the accumulated counts non-increasing and truncates to
// limit. keys holds first-encounter order, so ties keep the order in which
// the keys were first seen (stable sort).
func rankCounts(keys []string, counts map[string]int, limit int) []rankedCount {
	ranked := make([]rankedCount, 0, len(keys))
	for _, key := range keys {
		ranked = append(ranked, rankedCount{key: key, count: counts[key]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].count > ranked[j].count })
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
