// model/request.go
package model

import "time"

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

// Terminal reports whether no further transition is legal from s.
func (s RequestStatus) Terminal() bool {
	return s == RequestApproved || s == RequestRejected
}

type Request struct {
	ID          int64         `json:"id"`
	ItemID      int64         `json:"item_id"`
	RequesterID int64         `json:"requester_id"`
	ItemTitle   string        `json:"item_title"`
	CreatedAt   time.Time     `json:"created_at"`
	Status      RequestStatus `json:"status"`
}
