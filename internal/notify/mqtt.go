package notify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/panchang-seva/panchangam/internal/alert"
	"github.com/panchang-seva/panchangam/internal/speech"
)

const (
	alertTopic  = "panchang/alerts"
	speechTopic = "panchang/speech"
)

// Client wraps the MQTT connection used to push alerts and speech to paired
// display devices.
type Client struct {
	conn mqtt.Client
}

// Connect dials the broker and blocks until the connection is established.
func Connect(brokerURL, clientID string) (*Client, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.OnConnect = func(mqtt.Client) {
		log.Info().Str("broker", brokerURL).Msg("connected to MQTT broker")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Warn().Err(err).Msg("MQTT connection lost")
	}

	conn := mqtt.NewClient(opts)
	if token := conn.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &Client{conn: conn}, nil
}

func (c *Client) publish(topic string, payload []byte) error {
	token := c.conn.Publish(topic, 1, false, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}

func (c *Client) Close() {
	c.conn.Disconnect(250)
}

// AnnounceAlert publishes a fired muhurta alert for devices showing the
// calendar. Implements alert.Announcer.
func (c *Client) AnnounceAlert(ctx context.Context, event alert.AlertEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("could not encode alert event")
		return
	}
	if err := c.publish(alertTopic, payload); err != nil {
		log.Warn().Err(err).Msg("alert fan-out failed")
		return
	}
	log.Debug().Strs("muhurtas", event.Muhurtas).Msg("alert published")
}

// speechMessage is the wire form of a clip pushed to devices.
type speechMessage struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Audio    string `json:"audio"` // base64 mp3
}

// Player publishes synthesized clips over MQTT and waits out the estimated
// playback duration, so the sequencer's timing semantics hold even though
// the audio renders on a remote device. Implements speech.Player.
type Player struct {
	client *Client
}

func NewPlayer(client *Client) *Player {
	return &Player{client: client}
}

func (p *Player) Play(ctx context.Context, clip speech.Clip) error {
	msg := speechMessage{
		Text:     clip.Text,
		Language: clip.Language,
		Audio:    base64.StdEncoding.EncodeToString(clip.MP3),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode speech message: %w", err)
	}
	if err := p.client.publish(speechTopic, payload); err != nil {
		return err
	}

	select {
	case <-time.After(speech.EstimateDuration(clip)):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
