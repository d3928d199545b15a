package db

import (
	"fmt"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// replaces the stored festival list for every date of a year in one
// transaction. The dataset files carry a whole year at a time.
func ReplaceFestivals(year int, byDate map[string][]string) error {
	tx, err := DB.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	pattern := fmt.Sprintf("%%/%04d", year)
	if _, err := tx.Exec(`DELETE FROM festivals WHERE date LIKE $1;`, pattern); err != nil {
		log.Error().Int("year", year).Msg("failed to clear festivals for year")
		return err
	}

	insert := `INSERT INTO festivals (date, position, name) VALUES ($1, $2, $3);`
	for date, names := range byDate {
		for i, name := range names {
			if _, err := tx.Exec(insert, date, i, name); err != nil {
				log.Error().Str("date", date).Msg("failed to insert festival")
				return err
			}
		}
	}
	return tx.Commit()
}

// fetches the festival names for a DD/MM/YYYY date in dataset order. No
// festivals means an empty list, not an error.
func GetFestivalsByDate(date string) ([]string, error) {
	names := []string{}
	query := `
	SELECT name
	FROM festivals
	WHERE date = $1
	ORDER BY position;
	`
	if err := DB.Select(&names, query, date); err != nil {
		log.Error().Str("date", date).Msg("failed to get festivals by date")
		return nil, err
	}
	return names, nil
}
