package consumer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"bilifeed/internal/search"
)

// Archive is an append-only JSONL file of pushed videos. Writes are
// serialized; one archive per process.
type Archive struct {
	mu   sync.Mutex
	file *os.File
}

func NewArchive(path string) (*Archive, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &Archive{file: file}, nil
}

func (a *Archive) Append(rec *search.ExportRecord) error {
	line, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	line = append(line, '\n')

	a.mu.Lock()
	defer a.mu.Unlock()
	_, err = a.file.Write(line)
	return err
}

func (a *Archive) Close() error {
	return a.file.Close()
}
