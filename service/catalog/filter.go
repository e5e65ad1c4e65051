package catalogsvc

import (
	"strings"

	"lendshelf/model"
)

// Filter returns the order-preserving subsequence of items matching q. All
// three predicates are ANDed; text matches title or author case-insensitively,
// tags match exactly unless the ALL sentinel (or "") is given. Always a full
// recompute over the full input, never an incremental update.
func Filter(items []model.Item, q model.FilterQuery) []model.Item {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	category := normalizeTag(q.Category)
	cohort := normalizeTag(q.Cohort)

	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if !matchText(it, text) {
			continue
		}
		if category != model.TagAll && category != string(it.Category) {
			continue
		}
		if cohort != model.TagAll && cohort != string(it.Cohort) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchText(it model.Item, text string) bool {
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(it.Title), text) ||
		strings.Contains(strings.ToLower(it.Author), text)
}

func normalizeTag(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return model.TagAll
	}
	return s
}
