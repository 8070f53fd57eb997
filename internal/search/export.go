package search

import (
	"encoding/json"
	"fmt"
	"os"
)

// ExportRecord is the transport-neutral form handed to presentation and push
// consumers. The cover URL is deliberately absent, consumers rebuild display
// URLs through their own image proxy.
type ExportRecord struct {
	Bvid      string `json:"bvid"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Play      string `json:"play"`
	Like      string `json:"like"`
	Tag       string `json:"tag"`
	Favorites string `json:"favorites"`
}

// ToStructured converts records to the export shape.
func ToStructured(records []*VideoRecord) []ExportRecord {
	out := make([]ExportRecord, 0, len(records))
	for _, v := range records {
		out = append(out, ExportRecord{
			Bvid:      v.Bvid,
			Title:     v.Title,
			Author:    v.Author,
			Play:      v.Play,
			Like:      v.Like,
			Tag:       v.Tag,
			Favorites: v.Favorites,
		})
	}
	return out
}

// WriteJSON persists the export form to path. A write failure only loses the
// file, the in-memory records stay valid; callers log and move on.
func WriteJSON(path string, records []*VideoRecord) error {
	data, err := json.MarshalIndent(ToStructured(records), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}
