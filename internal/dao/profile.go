package dao

import (
	"time"

	"bilifeed/internal/model"
	"bilifeed/internal/search"
	"bilifeed/pkg/str"
)

type ProfileSpec struct {
	Id             int      `json:"id"`
	Name           string   `json:"name"`
	Keywords       []string `json:"keywords"`
	BannedKeywords []string `json:"bannedKeywords,omitempty"`
	MinPlay        int64    `json:"minPlay"`
	MinLikeRatio   float64  `json:"minLikeRatio"`
	TimeMode       string   `json:"timeMode"`
	PageSize       int      `json:"pageSize"`
	CreateTime     string   `json:"createTime"`
	UpdateTime     string   `json:"updateTime"`
}

func FromProfileModel(p *model.Profile) *ProfileSpec {
	return &ProfileSpec{
		Id:             p.Id,
		Name:           p.Name,
		Keywords:       str.SplitTrim(p.Keywords, ","),
		BannedKeywords: str.SplitTrim(p.BannedKeywords, ","),
		MinPlay:        p.MinPlay,
		MinLikeRatio:   p.MinLikeRatio,
		TimeMode:       p.TimeMode,
		PageSize:       p.PageSize,
		CreateTime:     p.CreateTime.Format(time.RFC3339),
		UpdateTime:     p.UpdateTime.Format(time.RFC3339),
	}
}

// ToSearchRequest turns a stored profile into a runnable aggregation request.
func (p *ProfileSpec) ToSearchRequest() search.Request {
	return search.Request{
		Keywords: p.Keywords,
		PageSize: p.PageSize,
		TimeMode: p.TimeMode,
		Criteria: &search.Criteria{
			MinPlay:        p.MinPlay,
			MinLikeRatio:   p.MinLikeRatio,
			BannedKeywords: p.BannedKeywords,
		},
		Shuffle: true,
	}
}

type CreateProfileRequest struct {
	Name           string   `json:"name" binding:"required,min=1,max=128"`
	Keywords       []string `json:"keywords" binding:"required,min=1,dive,min=1"`
	BannedKeywords []string `json:"bannedKeywords"`
	MinPlay        int64    `json:"minPlay" binding:"omitempty,min=0"`
	MinLikeRatio   float64  `json:"minLikeRatio" binding:"omitempty,min=0,max=1"`
	TimeMode       string   `json:"timeMode" binding:"omitempty,timemode"`
	PageSize       int      `json:"pageSize" binding:"omitempty,min=1,max=50"`
}

func (req *CreateProfileRequest) ToModel() *model.Profile {
	profile := &model.Profile{
		Name:           req.Name,
		Keywords:       str.JoinTrim(req.Keywords, ","),
		BannedKeywords: str.JoinTrim(req.BannedKeywords, ","),
		MinPlay:        req.MinPlay,
		MinLikeRatio:   req.MinLikeRatio,
		TimeMode:       req.TimeMode,
		PageSize:       req.PageSize,
	}
	if profile.MinPlay == 0 {
		profile.MinPlay = search.DefaultMinPlay
	}
	if profile.MinLikeRatio == 0 {
		profile.MinLikeRatio = search.DefaultMinLikeRatio
	}
	if profile.TimeMode == "" {
		profile.TimeMode = "3d"
	}
	if profile.PageSize == 0 {
		profile.PageSize = 20
	}
	return profile
}

type CreateProfileResponse struct {
	Id int `json:"id"`
}

type UpdateProfileRequest struct {
	Keywords       []string `json:"keywords" binding:"omitempty,min=1,dive,min=1"`
	BannedKeywords []string `json:"bannedKeywords"`
	MinPlay        *int64   `json:"minPlay" binding:"omitempty,min=0"`
	MinLikeRatio   *float64 `json:"minLikeRatio" binding:"omitempty,min=0,max=1"`
	TimeMode       *string  `json:"timeMode" binding:"omitempty,timemode"`
	PageSize       *int     `json:"pageSize" binding:"omitempty,min=1,max=50"`
}

func (req *UpdateProfileRequest) UpdateModel(profile *model.Profile) {
	if len(req.Keywords) > 0 {
		profile.Keywords = str.JoinTrim(req.Keywords, ",")
	}
	if req.BannedKeywords != nil {
		profile.BannedKeywords = str.JoinTrim(req.BannedKeywords, ",")
	}
	if req.MinPlay != nil {
		profile.MinPlay = *req.MinPlay
	}
	if req.MinLikeRatio != nil {
		profile.MinLikeRatio = *req.MinLikeRatio
	}
	if req.TimeMode != nil {
		profile.TimeMode = *req.TimeMode
	}
	if req.PageSize != nil {
		profile.PageSize = *req.PageSize
	}
}

type ListProfilesRequest struct {
	Start int `json:"start" form:"start" binding:"min=0"`
	Limit int `json:"limit" form:"limit" binding:"min=0,max=50"`
}

type ListProfilesResponse struct {
	Items []ProfileSpec `json:"items"`
	Total int64         `json:"total"`
}
