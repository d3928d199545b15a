package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/panchang-seva/panchangam/internal/model"
)

// inserts or replaces a panchang day keyed by its DD/MM/YYYY date.
func UpsertDay(day *model.Day) error {
	query := `
	INSERT INTO panchang_days (
		date, weekday, tithi, paksha, nakshatra, yoga, karanam, shaka_samvat,
		sunrise, sunset, moonrise, moonset,
		abhijit, rahu_kalam, yamaganda, gulikai_kalam, dur_muhurtam, amrit_kalam, varjyam
	)
	VALUES (
		:date, :weekday, :tithi, :paksha, :nakshatra, :yoga, :karanam, :shaka_samvat,
		:sunrise, :sunset, :moonrise, :moonset,
		:abhijit, :rahu_kalam, :yamaganda, :gulikai_kalam, :dur_muhurtam, :amrit_kalam, :varjyam
	)
	ON CONFLICT (date) DO UPDATE SET
		weekday = EXCLUDED.weekday,
		tithi = EXCLUDED.tithi,
		paksha = EXCLUDED.paksha,
		nakshatra = EXCLUDED.nakshatra,
		yoga = EXCLUDED.yoga,
		karanam = EXCLUDED.karanam,
		shaka_samvat = EXCLUDED.shaka_samvat,
		sunrise = EXCLUDED.sunrise,
		sunset = EXCLUDED.sunset,
		moonrise = EXCLUDED.moonrise,
		moonset = EXCLUDED.moonset,
		abhijit = EXCLUDED.abhijit,
		rahu_kalam = EXCLUDED.rahu_kalam,
		yamaganda = EXCLUDED.yamaganda,
		gulikai_kalam = EXCLUDED.gulikai_kalam,
		dur_muhurtam = EXCLUDED.dur_muhurtam,
		amrit_kalam = EXCLUDED.amrit_kalam,
		varjyam = EXCLUDED.varjyam;
	`
	if _, err := DB.NamedExec(query, day); err != nil {
		log.Error().Str("date", day.Date).Msg("failed to upsert panchang day")
		return err
	}
	return nil
}

// fetches one day by DD/MM/YYYY date. Returns nil, sql.ErrNoRows if not found.
func GetDayByDate(date string) (*model.Day, error) {
	var d model.Day
	query := `
	SELECT date, weekday, tithi, paksha, nakshatra, yoga, karanam, shaka_samvat,
	       sunrise, sunset, moonrise, moonset,
	       abhijit, rahu_kalam, yamaganda, gulikai_kalam, dur_muhurtam, amrit_kalam, varjyam
	FROM panchang_days
	WHERE date = $1;
	`
	err := DB.Get(&d, query, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Msg("failed to get panchang day by date")
		return nil, err
	}
	return &d, nil
}

// lists every stored day of a calendar month, ordered by day of month. Dates
// are stored DD/MM/YYYY so the month and year sit at fixed offsets.
func ListDaysByMonth(year, month int) ([]model.Day, error) {
	var days []model.Day
	pattern := fmt.Sprintf("__/%02d/%04d", month, year)
	query := `
	SELECT date, weekday, tithi, paksha, nakshatra, yoga, karanam, shaka_samvat,
	       sunrise, sunset, moonrise, moonset,
	       abhijit, rahu_kalam, yamaganda, gulikai_kalam, dur_muhurtam, amrit_kalam, varjyam
	FROM panchang_days
	WHERE date LIKE $1
	ORDER BY date;
	`
	if err := DB.Select(&days, query, pattern); err != nil {
		log.Error().Int("year", year).Int("month", month).Msg("failed to list panchang days")
		return nil, err
	}
	return days, nil
}
