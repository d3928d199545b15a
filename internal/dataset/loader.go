package dataset

import (
	"encoding/json"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/panchang-seva/panchangam/internal/db"
	"github.com/panchang-seva/panchangam/internal/model"
	"github.com/panchang-seva/panchangam/internal/storage"
)

// Loader imports panchang year documents and festival lists from a Storage
// backend into the database. Files are named "<year>.json" at the root and
// "festivals/<year>.json" for the festival lists.
type Loader struct {
	store   db.Store
	storage storage.Storage
}

func NewLoader(store db.Store, st storage.Storage) *Loader {
	return &Loader{store: store, storage: st}
}

// ImportYear loads "<year>.json" and upserts every day it contains.
func (l *Loader) ImportYear(year int) (int, error) {
	data, err := l.storage.ReadFile(fmt.Sprintf("%d.json", year))
	if err != nil {
		return 0, err
	}

	var days []model.Day
	if err := json.Unmarshal(data, &days); err != nil {
		return 0, fmt.Errorf("failed to parse year document %d: %w", year, err)
	}

	imported := 0
	for i := range days {
		d := &days[i]
		if d.Date == "" {
			log.Warn().Int("year", year).Int("index", i).Msg("skipping day with no date")
			continue
		}
		if err := l.store.UpsertDay(d); err != nil {
			return imported, fmt.Errorf("failed to store day %s: %w", d.Date, err)
		}
		imported++
	}
	log.Info().Int("year", year).Int("days", imported).Msg("year dataset imported")
	return imported, nil
}

// ImportFestivals loads "festivals/<year>.json", a date-keyed map of festival
// name lists, and replaces the year's stored festivals.
func (l *Loader) ImportFestivals(year int) (int, error) {
	data, err := l.storage.ReadFile(fmt.Sprintf("festivals/%d.json", year))
	if err != nil {
		return 0, err
	}

	var byDate map[string][]string
	if err := json.Unmarshal(data, &byDate); err != nil {
		return 0, fmt.Errorf("failed to parse festivals document %d: %w", year, err)
	}

	if err := l.store.ReplaceFestivals(year, byDate); err != nil {
		return 0, err
	}
	log.Info().Int("year", year).Int("dates", len(byDate)).Msg("festival dataset imported")
	return len(byDate), nil
}

// ImportAll scans the storage root for year documents and imports each one,
// with its festival list when present.
func (l *Loader) ImportAll() error {
	files, err := l.storage.List("")
	if err != nil {
		return err
	}

	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".json")
		year, err := strconv.Atoi(name)
		if err != nil || year < 1900 || year > 3000 {
			continue
		}
		if _, err := l.ImportYear(year); err != nil {
			return err
		}
		if _, err := l.ImportFestivals(year); err != nil {
			// Festival lists are optional per year.
			log.Debug().Int("year", year).Err(err).Msg("no festival dataset for year")
		}
	}
	return nil
}
