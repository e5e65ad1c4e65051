package catalogsvc

import (
	"testing"

	"lendshelf/model"

	"github.com/stretchr/testify/require"
)

func sampleItems() []model.Item {
	return []model.Item{
		{ID: 1, Title: "Web Development Technologies", Author: "S. Rao", Category: model.CategoryTechnology, Cohort: model.CohortBeginner, Available: true},
		{ID: 2, Title: "Programming in C", Author: "K. Mehta", Category: model.CategoryTechnology, Cohort: model.CohortIntermediate, Available: true},
		{ID: 3, Title: "A Brief History of Time", Author: "Stephen Hawking", Category: model.CategoryScience, Cohort: model.CohortAdvanced, Available: false},
		{ID: 4, Title: "The Silk Roads", Author: "Peter Frankopan", Category: model.CategoryHistory, Cohort: model.CohortIntermediate, Available: true},
	}
}

func ids(items []model.Item) []int64 {
	out := make([]int64, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestFilter_EmptyQueryReturnsAllInOrder(t *testing.T) {
	got := Filter(sampleItems(), model.FilterQuery{Text: "", Category: "ALL", Cohort: "ALL"})
	require.Equal(t, []int64{1, 2, 3, 4}, ids(got))
}

func TestFilter_TextMatchesTitleSubstring(t *testing.T) {
	got := Filter(sampleItems(), model.FilterQuery{Text: "web", Category: "ALL", Cohort: "ALL"})
	require.Equal(t, []int64{1}, ids(got))
}

func TestFilter_TextMatchesAuthor(t *testing.T) {
	got := Filter(sampleItems(), model.FilterQuery{Text: "hawking"})
	require.Equal(t, []int64{3}, ids(got))
}

func TestFilter_CategoryExactMatch(t *testing.T) {
	got := Filter(sampleItems(), model.FilterQuery{Category: "TECHNOLOGY"})
	require.Equal(t, []int64{1, 2}, ids(got))
}

func TestFilter_PredicatesAreANDed(t *testing.T) {
	got := Filter(sampleItems(), model.FilterQuery{Text: "programming", Category: "TECHNOLOGY", Cohort: "INTERMEDIATE"})
	require.Equal(t, []int64{2}, ids(got))

	// same text, wrong cohort
	got = Filter(sampleItems(), model.FilterQuery{Text: "programming", Category: "TECHNOLOGY", Cohort: "BEGINNER"})
	require.Empty(t, got)
}

func TestFilter_EmptyTagsActAsAll(t *testing.T) {
	got := Filter(sampleItems(), model.FilterQuery{})
	require.Equal(t, []int64{1, 2, 3, 4}, ids(got))
}

func TestFilter_TagsAreCaseInsensitive(t *testing.T) {
	got := Filter(sampleItems(), model.FilterQuery{Category: "technology", Cohort: "all"})
	require.Equal(t, []int64{1, 2}, ids(got))
}
