package catalog

import "lendshelf/model"

type SetAvailabilityReq struct {
	Available *bool `json:"available" validate:"required"`
}

// ItemResp mirrors model.Item with the cover fallback applied.
type ItemResp struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Cohort      string `json:"cohort"`
	Available   bool   `json:"available"`
	ImageRef    string `json:"image_ref"`
}

func toItemResp(it model.Item) ItemResp {
	return ItemResp{
		ID:          it.ID,
		Title:       it.Title,
		Author:      it.Author,
		Description: it.Description,
		Category:    string(it.Category),
		Cohort:      string(it.Cohort),
		Available:   it.Available,
		ImageRef:    it.DisplayImage(),
	}
}

func toItemResps(items []model.Item) []ItemResp {
	out := make([]ItemResp, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResp(it))
	}
	return out
}
