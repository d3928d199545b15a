package endpoints

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/panchang-seva/panchangam/internal/alert"
	"github.com/panchang-seva/panchangam/internal/http/api"
	"github.com/panchang-seva/panchangam/internal/http/api/notifications/packets"
	"github.com/panchang-seva/panchangam/internal/model"
	"github.com/panchang-seva/panchangam/internal/muhurta"
)

type NotificationController struct {
	poller    *alert.Poller
	scheduler *alert.Scheduler
	now       func() time.Time
}

func newNotificationController(poller *alert.Poller, scheduler *alert.Scheduler) *NotificationController {
	return &NotificationController{poller: poller, scheduler: scheduler, now: time.Now}
}

// NotificationModule mounts the public alert check and scheduling endpoints
func NotificationModule(poller *alert.Poller, scheduler *alert.Scheduler) api.Module {
	return NotificationModuleAt(poller, scheduler, time.Now)
}

// NotificationModuleAt pins the clock the check endpoints evaluate against.
// Used by tests.
func NotificationModuleAt(poller *alert.Poller, scheduler *alert.Scheduler, now func() time.Time) api.Module {
	ctl := newNotificationController(poller, scheduler)
	ctl.now = now
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/notifications/check", ctl.checkTrigger)
		c.PUBLIC_POST("/notifications/status", ctl.checkStatus)
		c.PUBLIC_POST("/notifications/schedule", ctl.schedule)
		c.PUBLIC_POST("/notifications/language", ctl.changeLanguage)
		c.PUBLIC_GET("/notifications/poller", ctl.pollerState)
	})
}

// ScheduledAlertsModule mounts the authenticated listing of pending
// Durmuhurtham timers
func ScheduledAlertsModule(scheduler *alert.Scheduler) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/notifications/scheduled", func(ctx *gin.Context, user *model.User) (any, *api.APIError) {
			return gin.H{"dates": scheduler.Dates()}, nil
		})
	})
}

// POST /api/notifications/check
func (n *NotificationController) checkTrigger(ctx *gin.Context) (any, *api.APIError) {
	var request packets.CheckRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid request body"}
	}
	// A missing timing is not a client error; clients poll with whatever
	// field the day carries, including "-".
	return muhurta.CheckTrigger(request.Timing(), n.now()), nil
}

// POST /api/notifications/status
func (n *NotificationController) checkStatus(ctx *gin.Context) (any, *api.APIError) {
	var request packets.CheckRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid request body"}
	}
	return muhurta.CheckStatus(request.Timing(), n.now()), nil
}

// POST /api/notifications/schedule
func (n *NotificationController) schedule(ctx *gin.Context) (any, *api.APIError) {
	var request packets.ScheduleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "durMuhurtam and date are required"}
	}
	return n.scheduler.Schedule(request.Date, request.DurMuhurtam), nil
}

// POST /api/notifications/language
func (n *NotificationController) changeLanguage(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LanguageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "language is required"}
	}

	// The catch-up announcements speak through the sequencer and can take
	// many seconds; the request only confirms the switch.
	go func(language string) {
		cctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		n.poller.LanguageChanged(cctx, language)
	}(request.Language)

	log.Info().Str("language", request.Language).Msg("announcement language changed")
	return gin.H{"language": request.Language}, nil
}

// GET /api/notifications/poller
func (n *NotificationController) pollerState(ctx *gin.Context) (any, *api.APIError) {
	return gin.H{
		"state":    n.poller.State().String(),
		"language": n.poller.Language(),
	}, nil
}
