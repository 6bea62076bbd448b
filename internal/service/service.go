// Package service implements the in-memory backend of the support inbox.
// All collections are seeded demo data; every operation waits on the
// network simulator and independently rolls its injected-failure check,
// so callers must treat every call as fallible even for pure reads.
package service

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chiragSahani/copilot-inbox/internal/events"
	"github.com/chiragSahani/copilot-inbox/internal/model"
	"github.com/chiragSahani/copilot-inbox/internal/seed"
	"github.com/chiragSahani/copilot-inbox/internal/simulator"
	"github.com/chiragSahani/copilot-inbox/pkg/metrics"
)

// DataService owns the canonical in-memory collections. All mutation
// happens under mu, so any single operation is atomic from the caller's
// perspective.
type DataService struct {
	sim       simulator.Simulator
	events    events.Publisher
	logger    *zap.Logger
	jwtSecret string
	tokenTTL  time.Duration

	mu            sync.RWMutex
	conversations []model.Conversation
	knowledge     []model.KnowledgeSource
	users         []model.User
	teams         []model.Team
	notifications []model.Notification
	currentUser   model.User
	authToken     string

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New creates a data service seeded with the demo dataset. pub may be nil
// for no event fan-out; a non-positive tokenTTL falls back to 24h.
func New(sim simulator.Simulator, pub events.Publisher, jwtSecret string, tokenTTL time.Duration, log *zap.Logger) *DataService {
	data := seed.Generate()

	if pub == nil {
		pub = events.Noop{}
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}

	return &DataService{
		sim:           sim,
		events:        pub,
		logger:        log,
		jwtSecret:     jwtSecret,
		tokenTTL:      tokenTTL,
		conversations: data.Conversations,
		knowledge:     data.KnowledgeSources,
		users:         data.Users,
		teams:         data.Teams,
		notifications: data.Notifications,
		currentUser:   data.Users[0],
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// failInjected rolls the injected-failure check for op and records it.
func (s *DataService) failInjected(op string) bool {
	if s.sim.ShouldFail() {
		metrics.SimulatedFailuresTotal.WithLabelValues(op).Inc()
		return true
	}
	return false
}

// cloneConversation returns a copy whose message slice does not alias the
// stored one, so callers never hold mutable references into the service.
func cloneConversation(c model.Conversation) model.Conversation {
	out := c
	out.Messages = make([]model.Message, len(c.Messages))
	copy(out.Messages, c.Messages)
	return out
}

func (s *DataService) randInt(min, max int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(max-min+1) + min
}

func (s *DataService) randFloat(min, max float64) float64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return min + s.rng.Float64()*(max-min)
}
