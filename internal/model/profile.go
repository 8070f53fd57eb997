package model

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Profile is a named, reusable search preset: keyword set plus thresholds.
type Profile struct {
	Id             int       `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"type:varchar(128);uniqueIndex"`
	Keywords       string    `json:"keywords" gorm:"type:text;NOT NULL"`
	BannedKeywords string    `json:"banned_keywords" gorm:"type:text"`
	MinPlay        int64     `json:"min_play" gorm:"default:1000"`
	MinLikeRatio   float64   `json:"min_like_ratio" gorm:"default:0.04"`
	TimeMode       string    `json:"time_mode" gorm:"type:varchar(16);default:'3d'"`
	PageSize       int       `json:"page_size" gorm:"default:20"`
	CreateTime     time.Time `json:"create_time" gorm:"datetime;autoCreateTime"`
	UpdateTime     time.Time `json:"update_time" gorm:"datetime;autoCreateTime;autoUpdateTime"`
}

func AddProfile(profile *Profile) error {
	return DB.Create(profile).Error
}

func UpdateProfile(profile *Profile) error {
	return DB.Save(profile).Error
}

func DeleteProfile(profile *Profile) error {
	return DB.Delete(profile).Error
}

func GetProfileById(id int) (*Profile, error) {
	var profile Profile
	if err := DB.Where("id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func GetProfileByName(name string) (*Profile, error) {
	var profile Profile
	if err := DB.Where("name = ?", name).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func ListProfiles(start, limit int) ([]Profile, int64, error) {
	var profiles []Profile
	var total int64
	if err := DB.Model(&Profile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := DB.Model(&Profile{}).Offset(start).Limit(limit).Find(&profiles).Error; err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}
