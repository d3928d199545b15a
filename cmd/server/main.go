package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/panchang-seva/panchangam/internal/alert"
	"github.com/panchang-seva/panchangam/internal/dataset"
	"github.com/panchang-seva/panchangam/internal/db"
	"github.com/panchang-seva/panchangam/internal/model"
	"github.com/panchang-seva/panchangam/internal/notify"
	"github.com/panchang-seva/panchangam/internal/redis"
	"github.com/panchang-seva/panchangam/internal/speech"
)

func main() {
	// .env is optional; real deployments set the variables directly
	_ = godotenv.Load()

	env := LoadEnvironment()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if env.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrations failed")
	}
	store := db.NewStore()

	storageSystem := InitStorage(env)
	loader := dataset.NewLoader(store, storageSystem)
	if env.ImportOnBoot {
		if err := loader.ImportAll(); err != nil {
			log.Error().Err(err).Msg("dataset import on boot failed")
		}
	}

	// Synthesizer, with redis caching when configured.
	var synth speech.Synthesizer = speech.NewGoogleSynthesizer(env.GoogleTTSAPIKey)
	if env.RedisAddress != "" {
		cache := redis.New(env.RedisAddress, env.RedisUsername, env.RedisPassword, 24*time.Hour)
		if err := cache.Ping(context.Background()); err != nil {
			log.Warn().Err(err).Msg("redis unreachable, speech caching disabled")
		} else {
			synth = speech.NewCachingSynthesizer(synth, cache)
		}
		defer cache.Close()
	}

	// MQTT fans alerts and speech out to paired display devices.
	var player speech.Player
	var announcer alert.Announcer
	if env.MQTTBrokerURL != "" {
		mqttClient, err := notify.Connect(env.MQTTBrokerURL, env.MQTTClientID)
		if err != nil {
			log.Fatal().Err(err).Msg("MQTT connect failed")
		}
		defer mqttClient.Close()
		player = notify.NewPlayer(mqttClient)
		announcer = mqttClient
	} else {
		log.Warn().Msg("no MQTT broker configured, speech output disabled")
		player = speech.NewMockPlayer()
	}

	sequencer := speech.NewSequencer(synth, player)
	session := alert.NewSession()
	scheduler := alert.NewScheduler()
	defer scheduler.Stop()

	hostname, _ := os.Hostname()
	poller := alert.NewPoller(session, dayLookup(store), sequencer, announcer, alert.PollerConfig{
		InstanceID: hostname,
		Language:   env.AnnounceLanguage,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go poller.Run(ctx)

	if env.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	RegisterRoutes(r, env, store, synth, poller, scheduler, loader)

	log.Info().Str("address", env.ServerAddress).Msg("server listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

// dayLookup adapts the store to the poller's day resolver. A date with no
// data is not an error; the poller just stays quiet.
func dayLookup(store db.Store) alert.DayFunc {
	return func(ctx context.Context, date string) (*model.Day, error) {
		day, err := store.GetDayByDate(date)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, nil
			}
			return nil, err
		}
		return day, nil
	}
}
