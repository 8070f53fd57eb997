package push

import (
	"bilifeed/internal/model"
	"bilifeed/internal/search"
)

// DBRecorder writes pushed videos to the push_records table.
type DBRecorder struct{}

func (DBRecorder) RecordPushed(records []*search.VideoRecord) error {
	rows := make([]*model.PushRecord, 0, len(records))
	for _, v := range records {
		rows = append(rows, &model.PushRecord{
			Bvid:   v.Bvid,
			Title:  v.Title,
			Author: v.Author,
			Play:   v.Play,
			Like:   v.Like,
		})
	}
	return model.AddPushRecords(rows)
}
