package seed

import (
	"fmt"
	"os"

	"lendshelf/model"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Load reads the catalog seed file for memory mode. Ingestion proper is an
// external concern; this only gives the in-memory store its starting rows.
func Load(path string) ([]model.Item, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("parse catalog seed %s: %w", path, err)
	}
	for i, it := range items {
		if it.ID <= 0 {
			return nil, fmt.Errorf("catalog seed %s: item %d has no id", path, i)
		}
		if !it.Category.Valid() {
			return nil, fmt.Errorf("catalog seed %s: item %d has unknown category %q", path, i, it.Category)
		}
		if !it.Cohort.Valid() {
			return nil, fmt.Errorf("catalog seed %s: item %d has unknown cohort %q", path, i, it.Cohort)
		}
	}
	return items, nil
}
