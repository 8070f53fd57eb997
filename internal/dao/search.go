package dao

import (
	"bilifeed/internal/search"
)

// SearchRequest is the ad-hoc aggregation request from the dashboard form.
// Threshold fields are pointers so "not supplied" is distinguishable from
// zero: a request with no thresholds at all runs unfiltered.
type SearchRequest struct {
	Keywords       []string `json:"keywords" binding:"required,min=1,dive,min=1"`
	PageSize       int      `json:"pageSize" binding:"omitempty,min=1,max=50"`
	TimeMode       string   `json:"timeMode" binding:"omitempty,timemode"`
	CustomStart    string   `json:"customStart" binding:"omitempty,datetime=2006-01-02"`
	CustomEnd      string   `json:"customEnd" binding:"omitempty,datetime=2006-01-02"`
	MinPlay        *int64   `json:"minPlay" binding:"omitempty,min=0"`
	MinLikePct     *float64 `json:"minLikePct" binding:"omitempty,min=0,max=100"`
	BannedKeywords []string `json:"bannedKeywords"`
	Shuffle        *bool    `json:"shuffle"`
}

// ToSearchRequest fills defaults and converts to the pipeline request.
func (r *SearchRequest) ToSearchRequest() search.Request {
	req := search.Request{
		Keywords:    r.Keywords,
		PageSize:    r.PageSize,
		TimeMode:    r.TimeMode,
		CustomStart: r.CustomStart,
		CustomEnd:   r.CustomEnd,
		Shuffle:     true,
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}
	if req.TimeMode == "" {
		req.TimeMode = "3d"
	}
	if r.Shuffle != nil {
		req.Shuffle = *r.Shuffle
	}

	if r.MinPlay != nil || r.MinLikePct != nil || len(r.BannedKeywords) > 0 {
		c := search.DefaultCriteria()
		if r.MinPlay != nil {
			c.MinPlay = *r.MinPlay
		}
		if r.MinLikePct != nil {
			c.MinLikeRatio = *r.MinLikePct / 100
		}
		c.BannedKeywords = r.BannedKeywords
		req.Criteria = &c
	}
	return req
}

// VideoSpec is the API shape of one video: the export fields plus the cover
// URL the dashboard needs for rendering.
type VideoSpec struct {
	Bvid      string `json:"bvid"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Play      string `json:"play"`
	Like      string `json:"like"`
	Tag       string `json:"tag,omitempty"`
	Favorites string `json:"favorites"`
	Cover     string `json:"cover,omitempty"`
	URL       string `json:"url"`
}

func FromVideoRecord(v *search.VideoRecord) VideoSpec {
	return VideoSpec{
		Bvid:      v.Bvid,
		Title:     v.Title,
		Author:    v.Author,
		Play:      v.Play,
		Like:      v.Like,
		Tag:       v.Tag,
		Favorites: v.Favorites,
		Cover:     v.Cover,
		URL:       v.URL(),
	}
}

type SearchResponse struct {
	Items []VideoSpec `json:"items"`
	Total int         `json:"total"`
}

func ToSearchResponse(records []*search.VideoRecord) SearchResponse {
	items := make([]VideoSpec, len(records))
	for i, v := range records {
		items[i] = FromVideoRecord(v)
	}
	return SearchResponse{Items: items, Total: len(items)}
}
