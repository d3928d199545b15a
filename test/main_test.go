package test

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/panchang-seva/panchangam/internal/alert"
	"github.com/panchang-seva/panchangam/internal/db"
	"github.com/panchang-seva/panchangam/internal/http/api"
	adminAuth "github.com/panchang-seva/panchangam/internal/http/api/admin/auth/endpoints"
	chatbotEndpoints "github.com/panchang-seva/panchangam/internal/http/api/chatbot/endpoints"
	notificationEndpoints "github.com/panchang-seva/panchangam/internal/http/api/notifications/endpoints"
	panchangEndpoints "github.com/panchang-seva/panchangam/internal/http/api/panchang/endpoints"
	rashiEndpoints "github.com/panchang-seva/panchangam/internal/http/api/rashi/endpoints"
	ttsEndpoints "github.com/panchang-seva/panchangam/internal/http/api/tts/endpoints"
	"github.com/panchang-seva/panchangam/internal/model"
	"github.com/panchang-seva/panchangam/internal/speech"
)

const testSecret = "integration-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// memStore is an in-memory db.Store for endpoint tests.
type memStore struct {
	mu        sync.Mutex
	nextID    int
	users     map[string]*model.User
	days      map[string]model.Day
	festivals map[string][]string
}

func newMemStore() *memStore {
	return &memStore{
		nextID:    1,
		users:     make(map[string]*model.User),
		days:      make(map[string]model.Day),
		festivals: make(map[string][]string),
	}
}

func (m *memStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	now := time.Now()
	m.users[email] = &model.User{
		ID:             id,
		Email:          email,
		HashedPassword: hashedPassword,
		Name:           name,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return id, nil
}

func (m *memStore) GetUserByEmail(email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *u
	return &copied, nil
}

func (m *memStore) GetUserByID(id int) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memStore) UpdateUserProfile(id int, email string, name *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for oldEmail, u := range m.users {
		if u.ID == id {
			u.Email = email
			u.Name = name
			u.UpdatedAt = time.Now()
			if oldEmail != email {
				delete(m.users, oldEmail)
				m.users[email] = u
			}
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *memStore) UpsertDay(day *model.Day) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.days[day.Date] = *day
	return nil
}

func (m *memStore) GetDayByDate(date string) (*model.Day, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.days[date]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &d, nil
}

func (m *memStore) ListDaysByMonth(year, month int) ([]model.Day, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	suffix := fmt.Sprintf("/%02d/%04d", month, year)
	var out []model.Day
	for date, d := range m.days {
		if strings.HasSuffix(date, suffix) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (m *memStore) ReplaceFestivals(year int, byDate map[string][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	suffix := fmt.Sprintf("/%04d", year)
	for date := range m.festivals {
		if strings.HasSuffix(date, suffix) {
			delete(m.festivals, date)
		}
	}
	for date, names := range byDate {
		m.festivals[date] = append([]string(nil), names...)
	}
	return nil
}

func (m *memStore) GetFestivalsByDate(date string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	names, ok := m.festivals[date]
	if !ok {
		return []string{}, nil
	}
	return append([]string(nil), names...), nil
}

var _ db.Store = (*memStore)(nil)

// routerDeps is everything a test can swap in when building the app router.
type routerDeps struct {
	store db.Store
	synth speech.Synthesizer
	days  alert.DayFunc
	now   func() time.Time
}

// newTestRouter mirrors the route registration of cmd/server, against
// in-memory dependencies.
func newTestRouter(deps routerDeps) (*gin.Engine, *alert.Scheduler) {
	if deps.store == nil {
		deps.store = newMemStore()
	}
	if deps.synth == nil {
		deps.synth = noopSynth{}
	}
	if deps.days == nil {
		deps.days = func(ctx context.Context, date string) (*model.Day, error) { return nil, nil }
	}
	if deps.now == nil {
		deps.now = time.Now
	}

	session := alert.NewSession()
	sequencer := speech.NewSequencer(deps.synth, speech.NewMockPlayer())
	poller := alert.NewPoller(session, deps.days, sequencer, nil, alert.PollerConfig{
		InstanceID: "test",
		Language:   "en",
		Now:        deps.now,
	})
	scheduler := alert.NewScheduler()
	scheduler.SetNow(deps.now)

	r := gin.New()

	api.MountGroup(r, api.GroupConfig{Prefix: "/api"},
		panchangEndpoints.PanchangModule(deps.store),
		ttsEndpoints.TTSModule(deps.synth),
		notificationEndpoints.NotificationModuleAt(poller, scheduler, deps.now),
		chatbotEndpoints.ChatbotModule(),
		rashiEndpoints.RashiModule(),
	)
	api.MountGroup(r, api.GroupConfig{Prefix: "/api/admin"},
		adminAuth.AuthPublicModule(testSecret, deps.store),
	)
	api.MountGroup(r, api.GroupConfig{Prefix: "/api/admin", Auth: true, SecretKey: testSecret, Store: deps.store},
		adminAuth.AuthSessionModule(testSecret, deps.store),
		notificationEndpoints.ScheduledAlertsModule(scheduler),
	)

	return r, scheduler
}

// noopSynth returns a fixed clip without any network calls.
type noopSynth struct{}

func (noopSynth) Synthesize(ctx context.Context, text, language string) (speech.Clip, error) {
	return speech.Clip{Text: text, Language: language, MP3: []byte("mp3")}, nil
}
