package endpoints

import (
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/panchang-seva/panchangam/internal/http/api"
	"github.com/panchang-seva/panchangam/internal/http/api/tts/packets"
	"github.com/panchang-seva/panchangam/internal/speech"
)

type TTSController struct {
	synth speech.Synthesizer
}

func newTTSController(synth speech.Synthesizer) *TTSController {
	return &TTSController{synth: synth}
}

// TTSModule mounts the public speech synthesis proxy
func TTSModule(synth speech.Synthesizer) api.Module {
	ctl := newTTSController(synth)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/tts", ctl.synthesize)
	})
}

// POST /api/tts
func (t *TTSController) synthesize(ctx *gin.Context) (any, *api.APIError) {
	var request packets.SpeakRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "text is required"}
	}

	language := request.Language
	if language == "" {
		language = "en"
	}

	clip, err := t.synth.Synthesize(ctx.Request.Context(), request.Text, language)
	if err != nil {
		log.Error().Err(err).Str("language", language).Msg("speech synthesis failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "speech synthesis failed"}
	}

	return packets.SpeakResponse{
		Audio: base64.StdEncoding.EncodeToString(clip.MP3),
	}, nil
}
