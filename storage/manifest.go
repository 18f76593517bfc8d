package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
)

// ManifestName is the companion index file listing, per year, the ordered set
// of month keys present, so readers never need a directory scan.
const ManifestName = "monthIndex.json"

// MonthRef addresses one monthly shard.
type MonthRef struct {
	Year     int    `json:"year"`
	MonthKey string `json:"monthKey"`
}

// Manifest maps a four-digit year to its month keys sorted ascending by
// numeric month prefix.
type Manifest map[string][]string

// WriteManifest rebuilds the manifest from the shards currently on disk.
func (s *Store) WriteManifest() (Manifest, error) {
	refs, err := s.MonthsOnDisk()
	if err != nil {
		return nil, err
	}

	manifest := Manifest{}
	for _, ref := range refs {
		year := fmt.Sprintf("%04d", ref.Year)
		manifest[year] = append(manifest[year], ref.MonthKey)
	}
	for _, months := range manifest {
		sort.Strings(months)
	}

	buf, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}

	path := filepath.Join(s.root, ManifestName)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0644); err != nil {
		return nil, fmt.Errorf("write temp manifest: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return nil, fmt.Errorf("replace manifest: %w", err)
	}
	return manifest, nil
}

// ReadManifest loads the manifest. A missing or corrupt manifest yields an
// empty index, mirroring the corrupt-shard policy.
func (s *Store) ReadManifest() Manifest {
	buf, err := os.ReadFile(filepath.Join(s.root, ManifestName))
	if err != nil {
		return Manifest{}
	}
	var manifest Manifest
	if err := json.Unmarshal(buf, &manifest); err != nil {
		return Manifest{}
	}
	return manifest
}

// Months flattens the manifest into (year, monthKey) pairs sorted descending
// by year then numeric month prefix, so "most recent first" pagination is
// well-defined across year boundaries.
func (m Manifest) Months() []MonthRef {
	var refs []MonthRef
	for year, months := range m {
		y, err := strconv.Atoi(year)
		if err != nil {
			continue
		}
		for _, key := range months {
			refs = append(refs, MonthRef{Year: y, MonthKey: key})
		}
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Year != refs[j].Year {
			return refs[i].Year > refs[j].Year
		}
		return refs[i].MonthKey > refs[j].MonthKey
	})
	return refs
}
