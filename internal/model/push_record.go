package model

import "time"

// PushRecord is one video that made it into a delivered digest.
type PushRecord struct {
	Id       int       `json:"id" gorm:"primaryKey"`
	Bvid     string    `json:"bvid" gorm:"type:varchar(32);index"`
	Title    string    `json:"title" gorm:"type:varchar(512)"`
	Author   string    `json:"author" gorm:"type:varchar(128)"`
	Play     string    `json:"play" gorm:"type:varchar(32)"`
	Like     string    `json:"like" gorm:"type:varchar(32)"`
	PushTime time.Time `json:"push_time" gorm:"datetime;autoCreateTime;index"`
}

func AddPushRecords(records []*PushRecord) error {
	if len(records) == 0 {
		return nil
	}
	return DB.Create(records).Error
}

func ListPushRecords(start, limit int) ([]PushRecord, int64, error) {
	var records []PushRecord
	var total int64
	if err := DB.Model(&PushRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := DB.Model(&PushRecord{}).Order("id desc").Offset(start).Limit(limit).Find(&records).Error
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}
