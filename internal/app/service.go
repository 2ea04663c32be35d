package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ProtoSG/momentum-front/internal/api"
	"github.com/ProtoSG/momentum-front/internal/game"
	"github.com/ProtoSG/momentum-front/internal/model"
	"github.com/ProtoSG/momentum-front/internal/session"
)

// Service holds the client-side state (task list, pet snapshot, level table)
// and runs every mutation as a blocking round trip followed by a full reload
// from the server. Locally held numbers are last-fetched snapshots; the
// server is authoritative.
//
// The snapshots are guarded by a mutex: the TUI runs commands on their own
// goroutines, so reloads can overlap with reads. The lock is never held
// across a network call.
type Service struct {
	client  *api.Client
	session *session.Store
	log     *slog.Logger

	confirm       func(prompt string) bool
	pointsChanged func(total int)

	mu     sync.Mutex
	tasks  []model.Task
	pet    model.Pet
	hasPet bool
	levels []model.PetLevel

	petRefresh int
}

func NewService(client *api.Client, sess *session.Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		client:  client,
		session: sess,
		log:     log,
	}
}

// SetConfirm installs the interactive confirmation used by destructive
// operations. With no confirmer installed, deletes are declined.
func (s *Service) SetConfirm(fn func(prompt string) bool) {
	s.confirm = fn
}

// SetPointsChanged installs the callback fired whenever a care action
// returns a fresh points balance, so sibling views stay consistent without a
// shared store.
func (s *Service) SetPointsChanged(fn func(total int)) {
	s.pointsChanged = fn
}

func (s *Service) CurrentUser(ctx context.Context) (model.User, bool, error) {
	return s.session.Current(ctx)
}

// Tasks returns the current task list snapshot.
func (s *Service) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks
}

// Task finds a task in the current snapshot.
func (s *Service) Task(id int64) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.TaskID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// Tally recomputes the display counters from the current snapshot.
func (s *Service) Tally() game.Tally {
	return game.TallyTasks(s.Tasks())
}

// Pet returns the last-fetched pet snapshot; ok is false when the user has
// not created one yet.
func (s *Service) Pet() (model.Pet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pet, s.hasPet
}

func (s *Service) Levels() []model.PetLevel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.levels
}

// PetRefreshSignal is a counter bumped whenever a completed task should make
// the pet view refetch its state.
func (s *Service) PetRefreshSignal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.petRefresh
}
