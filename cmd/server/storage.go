package main

import (
	"github.com/rs/zerolog/log"

	"github.com/panchang-seva/panchangam/internal/storage"
)

// InitStorage selects and returns the configured dataset storage backend
func InitStorage(env Environment) storage.Storage {
	if env.UseSpaces {
		spacesStorage, err := storage.NewSpacesStorage(
			env.SpacesEndpoint,
			env.SpacesRegion,
			env.SpacesBucket,
			env.SpacesAccessKey,
			env.SpacesSecretKey,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize Spaces storage")
		}
		log.Info().Str("bucket", env.SpacesBucket).Msg("using DigitalOcean Spaces dataset storage")
		return spacesStorage
	}

	dir := env.DatasetPath
	if dir == "" {
		dir = "./data"
	}
	log.Info().Str("dir", dir).Msg("using local dataset storage")
	return storage.NewLocalStorage(dir)
}
