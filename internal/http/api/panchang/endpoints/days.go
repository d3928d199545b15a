package endpoints

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/panchang-seva/panchangam/internal/db"
	"github.com/panchang-seva/panchangam/internal/http/api"
	"github.com/panchang-seva/panchangam/internal/http/api/panchang/packets"
)

type PanchangController struct {
	store db.Store
}

func newPanchangController(store db.Store) *PanchangController {
	return &PanchangController{store: store}
}

// PanchangModule mounts the public calendar data endpoints
func PanchangModule(store db.Store) api.Module {
	ctl := newPanchangController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/panchang/days", ctl.listMonth)
		c.PUBLIC_GET("/panchang/days/:date", ctl.getDay)
		c.PUBLIC_GET("/panchang/festivals/:year/:date", ctl.getFestivals)
	})
}

// path dates use DD-MM-YYYY, storage uses DD/MM/YYYY
var (
	pathDate     = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})$`)
	pathDayMonth = regexp.MustCompile(`^(\d{2})-(\d{2})$`)
)

func storageDate(pathForm string) (string, bool) {
	m := pathDate.FindStringSubmatch(pathForm)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("%s/%s/%s", m[1], m[2], m[3]), true
}

// GET /api/panchang/days?year=2026&month=8
func (p *PanchangController) listMonth(ctx *gin.Context) (any, *api.APIError) {
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid year"}
	}
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil || month < 1 || month > 12 {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid month"}
	}

	days, err := p.store.ListDaysByMonth(year, month)
	if err != nil {
		log.Error().Err(err).Int("year", year).Int("month", month).Msg("month listing failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list days"}
	}

	return packets.MonthResponse{Year: year, Month: month, Days: days}, nil
}

// GET /api/panchang/days/26-08-2026
func (p *PanchangController) getDay(ctx *gin.Context) (any, *api.APIError) {
	date, ok := storageDate(ctx.Param("date"))
	if !ok {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "date must be DD-MM-YYYY"}
	}

	day, err := p.store.GetDayByDate(date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "no data for date"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch day"}
	}

	festivals, err := p.store.GetFestivalsByDate(date)
	if err == nil {
		day.Festivals = festivals
	}

	return day, nil
}

// GET /api/panchang/festivals/2026/26-08
func (p *PanchangController) getFestivals(ctx *gin.Context) (any, *api.APIError) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid year"}
	}

	dayMonth := ctx.Param("date")
	m := pathDayMonth.FindStringSubmatch(dayMonth)
	if m == nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "date must be DD-MM"}
	}
	date := fmt.Sprintf("%s/%s/%04d", m[1], m[2], year)

	festivals, err := p.store.GetFestivalsByDate(date)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch festivals"}
	}

	return packets.FestivalsResponse{Date: date, Festivals: festivals}, nil
}
