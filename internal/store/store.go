package store

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"

	"bilifeed/internal/search"
)

const (
	defaultsKey   = "ui_defaults"
	sentKeyPrefix = "sent:"
)

// Defaults are the persisted dashboard form values, loaded back on the next
// visit. Zero values mean "use the built-in default".
type Defaults struct {
	Keywords       []string `json:"keywords,omitempty"`
	BannedKeywords []string `json:"bannedKeywords,omitempty"`
	MinPlay        int64    `json:"minPlay,omitempty"`
	MinLikePct     float64  `json:"minLikePct,omitempty"`
	TimeMode       string   `json:"timeMode,omitempty"`
	PageSize       int      `json:"pageSize,omitempty"`
	CustomStart    string   `json:"customStart,omitempty"`
	CustomEnd      string   `json:"customEnd,omitempty"`
}

// Store is the local badger database holding push history and saved search
// defaults. One Store owns the directory exclusively.
type Store struct {
	db     *badger.DB
	logger *logrus.Entry
}

func NewStore(dir string, logger *logrus.Entry) (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	if err != nil {
		return nil, err
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(key []byte) ([]byte, error) {
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (s *Store) set(key, val []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})
}

// IsSent reports whether bvid was pushed before.
func (s *Store) IsSent(bvid string) (bool, error) {
	_, err := s.get([]byte(sentKeyPrefix + bvid))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// MarkSent records bvids as pushed, stamped with the current time.
func (s *Store) MarkSent(bvids []string) error {
	now := []byte(strconv.FormatInt(time.Now().Unix(), 10))
	return s.db.Update(func(txn *badger.Txn) error {
		for _, bvid := range bvids {
			if err := txn.Set([]byte(sentKeyPrefix+bvid), now); err != nil {
				return err
			}
		}
		return nil
	})
}

// FilterUnsent drops records already pushed in an earlier run. A read failure
// on one key keeps the record: pushing twice beats losing it.
func (s *Store) FilterUnsent(records []*search.VideoRecord) []*search.VideoRecord {
	fresh := make([]*search.VideoRecord, 0, len(records))
	for _, v := range records {
		sent, err := s.IsSent(v.Bvid)
		if err != nil {
			s.logger.WithError(err).Warnf("sent lookup for %s failed", v.Bvid)
		}
		if !sent {
			fresh = append(fresh, v)
		}
	}
	return fresh
}

// SentCount returns the size of the push history.
func (s *Store) SentCount() (int, error) {
	count := 0
	prefix := []byte(sentKeyPrefix)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// GetDefaults returns the saved dashboard defaults, or nil when none were
// saved yet.
func (s *Store) GetDefaults() (*Defaults, error) {
	val, err := s.get([]byte(defaultsKey))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	d := &Defaults{}
	if err := json.Unmarshal(val, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Store) SaveDefaults(d *Defaults) error {
	val, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.set([]byte(defaultsKey), val)
}
