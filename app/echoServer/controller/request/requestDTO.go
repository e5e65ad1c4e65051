package request

import (
	"time"

	"lendshelf/model"
)

type CreateRequestReq struct {
	ItemID int64 `json:"item_id" validate:"required,gt=0"`
}

// RequestResp renders CreatedAt at date granularity.
type RequestResp struct {
	ID        int64  `json:"id"`
	ItemID    int64  `json:"item_id"`
	ItemTitle string `json:"item_title"`
	CreatedAt string `json:"created_at"`
	Status    string `json:"status"`
}

func toRequestResp(r model.Request) RequestResp {
	return RequestResp{
		ID:        r.ID,
		ItemID:    r.ItemID,
		ItemTitle: r.ItemTitle,
		CreatedAt: r.CreatedAt.Format(time.DateOnly),
		Status:    string(r.Status),
	}
}

func toRequestResps(rows []model.Request) []RequestResp {
	out := make([]RequestResp, 0, len(rows))
	for _, r := range rows {
		out = append(out, toRequestResp(r))
	}
	return out
}
