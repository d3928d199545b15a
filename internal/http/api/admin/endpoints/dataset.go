package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/panchang-seva/panchangam/internal/dataset"
	"github.com/panchang-seva/panchangam/internal/http/api"
	"github.com/panchang-seva/panchangam/internal/model"
)

type DatasetController struct {
	loader *dataset.Loader
}

func newDatasetController(loader *dataset.Loader) *DatasetController {
	return &DatasetController{loader: loader}
}

// DatasetModule mounts the authenticated dataset import endpoints
func DatasetModule(loader *dataset.Loader) api.Module {
	ctl := newDatasetController(loader)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/dataset/import", ctl.importAll)
		c.POST("/dataset/import/:year", ctl.importYear)
	})
}

// POST /api/admin/dataset/import
func (d *DatasetController) importAll(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	if err := d.loader.ImportAll(); err != nil {
		log.Error().Err(err).Int("user", user.ID).Msg("dataset import failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "dataset import failed"}
	}
	return gin.H{"status": "imported"}, nil
}

// POST /api/admin/dataset/import/:year
func (d *DatasetController) importYear(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	year, err := strconv.Atoi(ctx.Param("year"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid year"}
	}

	days, err := d.loader.ImportYear(year)
	if err != nil {
		log.Error().Err(err).Int("year", year).Msg("year import failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "year import failed"}
	}

	dates, err := d.loader.ImportFestivals(year)
	if err != nil {
		// Festival files are optional per year.
		log.Debug().Err(err).Int("year", year).Msg("no festival dataset for year")
	}

	return gin.H{"year": year, "days": days, "festivalDates": dates}, nil
}
