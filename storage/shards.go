package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"mailsim/models"
	"mailsim/utils"
)

// Store persists monthly shards under root as
// {root}/{yyyy}/{mm_monthname}.json, each shard a JSON array of messages
// sorted ascending by timestamp.
type Store struct {
	root string
}

// NewStore creates a shard store rooted at dir. The directory is created if
// missing.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output root %s: %w", dir, err)
	}
	return &Store{root: dir}, nil
}

// Root returns the output root directory.
func (s *Store) Root() string {
	return s.root
}

// ShardPath returns the file path of the shard for the given month.
func (s *Store) ShardPath(year int, monthKey string) string {
	return filepath.Join(s.root, fmt.Sprintf("%04d", year), monthKey+".json")
}

// ReadMonth loads one month's messages. A missing, unreadable or corrupt
// shard is treated as an empty month rather than an error, so a bad file
// triggers regeneration instead of aborting a multi-month run.
func (s *Store) ReadMonth(year int, monthKey string) []models.Message {
	path := s.ShardPath(year, monthKey)
	buf, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			utils.Log.Warn("Unreadable shard %s, treating as empty: %v", path, err)
		}
		return nil
	}

	var messages []models.Message
	if err := json.Unmarshal(buf, &messages); err != nil {
		utils.Log.Warn("Corrupt shard %s, treating as empty: %v", path, err)
		return nil
	}
	return messages
}

// WriteMonth persists one month's messages sorted ascending by timestamp. The
// write is atomic: content goes to a temporary file which is renamed into
// place, so a crash never leaves a half-written shard. If the rename fails
// the previous shard stays authoritative and the temp file is removed.
func (s *Store) WriteMonth(year int, monthKey string, messages []models.Message) error {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp < messages[j].Timestamp
	})

	path := s.ShardPath(year, monthKey)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create year directory: %w", err)
	}

	buf, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return fmt.Errorf("encode shard %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0644); err != nil {
		return fmt.Errorf("write temp shard %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace shard %s: %w", path, err)
	}
	return nil
}

// MergeMonth appends messages into the existing shard for the month and
// rewrites it.
func (s *Store) MergeMonth(year int, monthKey string, messages []models.Message) error {
	existing := s.ReadMonth(year, monthKey)
	return s.WriteMonth(year, monthKey, append(existing, messages...))
}

// MonthsOnDisk scans the output root for shard files and returns the present
// (year, monthKey) pairs sorted ascending. The generator uses this to rebuild
// the manifest after a run; readers go through the manifest instead.
func (s *Store) MonthsOnDisk() ([]MonthRef, error) {
	years, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("scan output root: %w", err)
	}

	var refs []MonthRef
	for _, y := range years {
		if !y.IsDir() {
			continue
		}
		var year int
		if _, err := fmt.Sscanf(y.Name(), "%d", &year); err != nil {
			continue
		}
		files, err := os.ReadDir(filepath.Join(s.root, y.Name()))
		if err != nil {
			continue
		}
		for _, f := range files {
			name := f.Name()
			if filepath.Ext(name) != ".json" || name == ManifestName {
				continue
			}
			refs = append(refs, MonthRef{Year: year, MonthKey: name[:len(name)-len(".json")]})
		}
	}

	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Year != refs[j].Year {
			return refs[i].Year < refs[j].Year
		}
		return refs[i].MonthKey < refs[j].MonthKey
	})
	return refs, nil
}

// DayPresent reports whether the shard covering day already holds a message
// generated for that calendar day. Both the generator's bucketing and this
// check use the mailbox home timezone, so the two can never disagree at a
// midnight boundary.
//
// Only thread-origin messages count. Satellites carry a thread id and can
// spill past midnight onto the next day; a day holding nothing but spillover
// from its predecessor has not been generated yet.
func (s *Store) DayPresent(day time.Time, loc *time.Location) bool {
	d := day.In(loc)
	for _, m := range s.ReadMonth(d.Year(), utils.MonthKey(d)) {
		if m.ThreadID == "" && utils.SameDay(d, m.Time(loc)) {
			return true
		}
	}
	return false
}
