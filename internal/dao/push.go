package dao

import (
	"time"

	"bilifeed/internal/model"
)

type PushRunResponse struct {
	// Pushed is how many videos made it into the delivered digest; zero with
	// no error means nothing new qualified.
	Pushed int `json:"pushed"`
}

type PushRecordSpec struct {
	Id       int    `json:"id"`
	Bvid     string `json:"bvid"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Play     string `json:"play"`
	Like     string `json:"like"`
	PushTime string `json:"pushTime"`
}

func FromPushRecordModel(r *model.PushRecord) PushRecordSpec {
	return PushRecordSpec{
		Id:       r.Id,
		Bvid:     r.Bvid,
		Title:    r.Title,
		Author:   r.Author,
		Play:     r.Play,
		Like:     r.Like,
		PushTime: r.PushTime.Format(time.RFC3339),
	}
}

type ListPushRecordsRequest struct {
	Start int `json:"start" form:"start" binding:"min=0"`
	Limit int `json:"limit" form:"limit" binding:"min=0,max=100"`
}

type ListPushRecordsResponse struct {
	Items []PushRecordSpec `json:"items"`
	Total int64            `json:"total"`
}
