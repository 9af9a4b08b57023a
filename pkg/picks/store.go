package picks

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// ErrNoPicks reports that no saved bracket exists for the key.
var ErrNoPicks = errors.New("no saved picks")

// Store persists picks as JSON files through diskv, one file per
// user and year.
type Store struct {
	d *diskv.Diskv
}

func NewStore(basePath string) *Store {
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

func key(userID string, year int) string {
	return fmt.Sprintf("%s-%d.json", userID, year)
}

// Save writes the picks, replacing any existing bracket for the same
// user and year.
func (s *Store) Save(p *Picks) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.d.Write(key(p.UserID, p.Year), data)
}

// Load reads one saved bracket, or ErrNoPicks.
func (s *Store) Load(userID string, year int) (*Picks, error) {
	data, err := s.d.Read(key(userID, year))
	if err != nil {
		return nil, ErrNoPicks
	}
	p := &Picks{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, err
	}
	if p.Selections == nil {
		p.Selections = make(map[string]Slot)
	}
	return p, nil
}

// Delete removes a saved bracket. Missing picks are not an error.
func (s *Store) Delete(userID string, year int) error {
	if !s.d.Has(key(userID, year)) {
		return nil
	}
	return s.d.Erase(key(userID, year))
}

// Users lists user IDs with a saved bracket for the year.
func (s *Store) Users(year int) []string {
	suffix := fmt.Sprintf("-%d.json", year)
	var users []string
	for k := range s.d.Keys(nil) {
		if strings.HasSuffix(k, suffix) {
			users = append(users, strings.TrimSuffix(k, suffix))
		}
	}
	sort.Strings(users)
	return users
}
