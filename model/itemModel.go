// model/item.go
package model

type CategoryTag string

const (
	CategoryFiction    CategoryTag = "FICTION"
	CategoryScience    CategoryTag = "SCIENCE"
	CategoryTechnology CategoryTag = "TECHNOLOGY"
	CategoryHistory    CategoryTag = "HISTORY"
	CategoryArts       CategoryTag = "ARTS"
)

func (c CategoryTag) Valid() bool {
	switch c {
	case CategoryFiction, CategoryScience, CategoryTechnology, CategoryHistory, CategoryArts:
		return true
	}
	return false
}

type CohortTag string

const (
	CohortBeginner     CohortTag = "BEGINNER"
	CohortIntermediate CohortTag = "INTERMEDIATE"
	CohortAdvanced     CohortTag = "ADVANCED"
)

func (c CohortTag) Valid() bool {
	switch c {
	case CohortBeginner, CohortIntermediate, CohortAdvanced:
		return true
	}
	return false
}

// TagAll is the sentinel that matches every category/cohort value.
const TagAll = "ALL"

// FallbackImageRef is served when an item carries no cover reference.
const FallbackImageRef = "/static/covers/missing.png"

type Item struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Author      string      `json:"author"`
	Description string      `json:"description"`
	Category    CategoryTag `json:"category"`
	Cohort      CohortTag   `json:"cohort"`
	Available   bool        `json:"available"`
	ImageRef    string      `json:"image_ref"`
}

func (i Item) DisplayImage() string {
	if i.ImageRef == "" {
		return FallbackImageRef
	}
	return i.ImageRef
}

// FilterQuery holds the three catalog filter predicates. Empty Category or
// Cohort is treated the same as TagAll.
type FilterQuery struct {
	Text     string
	Category string
	Cohort   string
}
