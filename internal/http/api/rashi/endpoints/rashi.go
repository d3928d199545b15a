package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/panchang-seva/panchangam/internal/http/api"
	"github.com/panchang-seva/panchangam/internal/rashi"
)

// RashiModule mounts the rashiphalalu endpoints
func RashiModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/rashi", listRashis)
		c.PUBLIC_GET("/rashi/current", currentRashi)
		c.PUBLIC_GET("/rashi/:id/:period", predict)
	})
}

// GET /api/rashi?language=te
func listRashis(ctx *gin.Context) (any, *api.APIError) {
	language := ctx.DefaultQuery("language", "en")
	out := make([]gin.H, 0, 12)
	for _, id := range rashi.IDs() {
		out = append(out, gin.H{"id": id, "name": rashi.Name(id, language)})
	}
	return gin.H{"rashis": out}, nil
}

// GET /api/rashi/current
func currentRashi(ctx *gin.Context) (any, *api.APIError) {
	language := ctx.DefaultQuery("language", "en")
	id := rashi.CurrentRashi(time.Now())
	return gin.H{"id": id, "name": rashi.Name(id, language)}, nil
}

// GET /api/rashi/mesha/daily?language=hi
func predict(ctx *gin.Context) (any, *api.APIError) {
	language := ctx.DefaultQuery("language", "en")
	prediction, err := rashi.Predict(ctx.Param("id"), ctx.Param("period"), language, time.Now())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: err.Error()}
	}
	return prediction, nil
}
