package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/panchang-seva/panchangam/internal/alert"
	"github.com/panchang-seva/panchangam/internal/dataset"
	"github.com/panchang-seva/panchangam/internal/db"
	"github.com/panchang-seva/panchangam/internal/http/api"
	authapi "github.com/panchang-seva/panchangam/internal/http/api/admin/auth/endpoints"
	adminapi "github.com/panchang-seva/panchangam/internal/http/api/admin/endpoints"
	chatapi "github.com/panchang-seva/panchangam/internal/http/api/chatbot/endpoints"
	notifyapi "github.com/panchang-seva/panchangam/internal/http/api/notifications/endpoints"
	panchangapi "github.com/panchang-seva/panchangam/internal/http/api/panchang/endpoints"
	rashiapi "github.com/panchang-seva/panchangam/internal/http/api/rashi/endpoints"
	ttsapi "github.com/panchang-seva/panchangam/internal/http/api/tts/endpoints"
	"github.com/panchang-seva/panchangam/internal/speech"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(
	r *gin.Engine,
	env Environment,
	store db.Store,
	synth speech.Synthesizer,
	poller *alert.Poller,
	scheduler *alert.Scheduler,
	loader *dataset.Loader,
) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		panchangapi.PanchangModule(store),
		ttsapi.TTSModule(synth),
		notifyapi.NotificationModule(poller, scheduler),
		chatapi.ChatbotModule(),
		rashiapi.RashiModule(),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/admin",
		Auth:   false,
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api/admin",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		authapi.AuthSessionModule(env.SecretKey, store),
		adminapi.DatasetModule(loader),
		notifyapi.ScheduledAlertsModule(scheduler),
	)
}
