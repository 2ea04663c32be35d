package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ProtoSG/momentum-front/internal/api"
	"github.com/ProtoSG/momentum-front/internal/model"
	"github.com/ProtoSG/momentum-front/internal/session"
	"github.com/ProtoSG/momentum-front/internal/storage"
)

// fakeBackend is an in-memory stand-in for the Momentum REST API. It records
// every request it sees so tests can assert on call order and absence.
type fakeBackend struct {
	mu     sync.Mutex
	calls  []string
	tasks  []model.Task
	nextID int64
	pet    *model.Pet
	levels []model.PetLevel

	lastLedger model.PointsLedger
	lastXPBody string
	failPoints bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{nextID: 1}
}

func (b *fakeBackend) record(r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, r.Method+" "+r.URL.Path)
}

func (b *fakeBackend) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func (b *fakeBackend) callIndex(call string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, c := range b.calls {
		if c == call {
			return i
		}
	}
	return -1
}

func (b *fakeBackend) seedTask(t model.Task) model.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	if t.TaskID == 0 {
		t.TaskID = b.nextID
		b.nextID++
	}
	b.tasks = append(b.tasks, t)
	return t
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (b *fakeBackend) router() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			b.record(req)
			next.ServeHTTP(w, req)
		})
	})

	r.Post("/auth/login", func(w http.ResponseWriter, req *http.Request) {
		var in model.LoginRequest
		_ = json.NewDecoder(req.Body).Decode(&in)
		if in.Email != "test@test.com" || in.Password != "test" {
			http.Error(w, "bad credentials", http.StatusUnauthorized)
			return
		}
		writeJSON(w, model.AuthResponse{Email: in.Email, Token: "tok", RefreshToken: "ref"})
	})

	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				if req.Header.Get("Authorization") != "Bearer tok" {
					http.Error(w, "unauthorized", http.StatusUnauthorized)
					return
				}
				next.ServeHTTP(w, req)
			})
		})

		r.Get("/task", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			writeJSON(w, b.tasks)
		})
		r.Post("/task", func(w http.ResponseWriter, req *http.Request) {
			var in model.CreateTaskRequest
			_ = json.NewDecoder(req.Body).Decode(&in)
			task := b.seedTask(model.Task{
				Description: in.Description,
				Priority:    in.Priority,
				Status:      in.Status,
				DueDate:     in.DueDate,
			})
			writeJSON(w, task)
		})
		r.Put("/task/{id}", func(w http.ResponseWriter, req *http.Request) {
			id, _ := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
			var in model.UpdateTaskRequest
			_ = json.NewDecoder(req.Body).Decode(&in)
			b.mu.Lock()
			defer b.mu.Unlock()
			for i := range b.tasks {
				if b.tasks[i].TaskID == id {
					if in.Description != nil {
						b.tasks[i].Description = *in.Description
					}
					if in.DueDate != nil {
						b.tasks[i].DueDate = in.DueDate
					}
					writeJSON(w, b.tasks[i])
					return
				}
			}
			http.Error(w, "task not found", http.StatusNotFound)
		})
		r.Put("/task/state/{id}", func(w http.ResponseWriter, req *http.Request) {
			id, _ := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
			var in model.TaskStatusUpdate
			_ = json.NewDecoder(req.Body).Decode(&in)
			b.mu.Lock()
			defer b.mu.Unlock()
			for i := range b.tasks {
				if b.tasks[i].TaskID == id {
					b.tasks[i].Status = in.Status
					writeJSON(w, b.tasks[i])
					return
				}
			}
			http.Error(w, "task not found", http.StatusNotFound)
		})
		r.Delete("/task/{id}", func(w http.ResponseWriter, req *http.Request) {
			id, _ := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
			b.mu.Lock()
			defer b.mu.Unlock()
			for i := range b.tasks {
				if b.tasks[i].TaskID == id {
					b.tasks = append(b.tasks[:i], b.tasks[i+1:]...)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
			http.Error(w, "task not found", http.StatusNotFound)
		})

		r.Get("/pet", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			if b.pet == nil {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			writeJSON(w, b.pet)
		})
		r.Get("/pet-levels", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, b.levels)
		})
		r.Post("/pet/points", func(w http.ResponseWriter, req *http.Request) {
			if b.failPoints {
				http.Error(w, "ledger unavailable", http.StatusInternalServerError)
				return
			}
			var in model.PointsLedger
			_ = json.NewDecoder(req.Body).Decode(&in)
			b.mu.Lock()
			b.lastLedger = in
			if b.pet != nil {
				b.pet.PointsTotal += in.Amount
			}
			b.mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		})
		r.Post("/pet/experience", func(w http.ResponseWriter, req *http.Request) {
			data, _ := io.ReadAll(req.Body)
			n, _ := strconv.Atoi(strings.TrimSpace(string(data)))
			b.mu.Lock()
			b.lastXPBody = string(data)
			if b.pet != nil {
				b.pet.Experience += n
			}
			pet := b.pet
			b.mu.Unlock()
			writeJSON(w, pet)
		})
		r.Post("/pet/feed", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			b.pet.PointsTotal -= 10
			b.pet.Hunger -= 20
			if b.pet.Hunger < 0 {
				b.pet.Hunger = 0
			}
			pet := *b.pet
			b.mu.Unlock()
			writeJSON(w, pet)
		})
		r.Post("/pet/heal", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			b.pet.PointsTotal -= 20
			b.pet.Health = 100
			pet := *b.pet
			b.mu.Unlock()
			writeJSON(w, pet)
		})
		r.Post("/pet/boost-energy", func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			b.pet.PointsTotal -= 15
			b.pet.Energy = 100
			pet := *b.pet
			b.mu.Unlock()
			writeJSON(w, pet)
		})
	})

	return r
}

type fixture struct {
	svc     *Service
	client  *api.Client
	sess    *session.Store
	repo    *storage.SessionRepo
	backend *fakeBackend
}

func newFixture(t *testing.T, backend *fakeBackend) *fixture {
	t.Helper()
	ctx := context.Background()

	srv := httptest.NewServer(backend.router())
	t.Cleanup(srv.Close)

	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := storage.NewSessionRepo(db)
	sess := session.NewStore(repo)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := api.New(srv.URL, 5*time.Second, sess, log)
	svc := NewService(client, sess, log)

	return &fixture{svc: svc, client: client, sess: sess, repo: repo, backend: backend}
}

func (f *fixture) loginAs(t *testing.T) {
	t.Helper()
	if err := f.sess.Login(context.Background(), "tok", "ref", "test@test.com"); err != nil {
		t.Fatalf("seed session: %v", err)
	}
}

func TestCompletionAwardsInOrder(t *testing.T) {
	cases := []struct {
		priority model.TaskPriority
		points   int
		xp       int
	}{
		{model.PriorityLow, 10, 5},
		{model.PriorityMedium, 15, 10},
		{model.PriorityHigh, 20, 20},
	}

	for _, tc := range cases {
		t.Run(string(tc.priority), func(t *testing.T) {
			ctx := context.Background()
			backend := newFakeBackend()
			backend.pet = &model.Pet{PetID: 1, Name: "Draco", Health: 100, Energy: 100}
			task := backend.seedTask(model.Task{Description: "slay the bug", Priority: tc.priority, Status: model.TaskStatusTodo})

			f := newFixture(t, backend)
			f.loginAs(t)
			if err := f.svc.ReloadTasks(ctx); err != nil {
				t.Fatalf("reload: %v", err)
			}

			res, err := f.svc.ChangeStatus(ctx, task.TaskID, model.TaskStatusDone)
			if err != nil {
				t.Fatalf("change status: %v", err)
			}
			if !res.Changed || !res.Completed {
				t.Fatalf("res=%+v, want changed and completed", res)
			}
			if res.PointsAwarded != tc.points || res.ExperienceAwarded != tc.xp {
				t.Fatalf("awarded %d pts / %d xp, want %d / %d", res.PointsAwarded, res.ExperienceAwarded, tc.points, tc.xp)
			}

			if backend.lastLedger.Amount != tc.points {
				t.Errorf("ledger amount=%d, want %d", backend.lastLedger.Amount, tc.points)
			}
			if !strings.Contains(backend.lastLedger.Reason, "slay the bug") {
				t.Errorf("ledger reason=%q", backend.lastLedger.Reason)
			}
			if backend.lastLedger.RefID != task.TaskID {
				t.Errorf("ledger refId=%d, want %d", backend.lastLedger.RefID, task.TaskID)
			}
			if backend.lastXPBody != strconv.Itoa(tc.xp) {
				t.Errorf("xp body=%q, want %q", backend.lastXPBody, strconv.Itoa(tc.xp))
			}

			// Points, then experience, then status update — strictly ordered.
			pointsAt := backend.callIndex("POST /pet/points")
			xpAt := backend.callIndex("POST /pet/experience")
			statusAt := backend.callIndex("PUT /task/state/" + strconv.FormatInt(task.TaskID, 10))
			if pointsAt == -1 || xpAt == -1 || statusAt == -1 {
				t.Fatalf("missing calls: %v", backend.calls)
			}
			if !(pointsAt < xpAt && xpAt < statusAt) {
				t.Fatalf("call order wrong: points=%d xp=%d status=%d", pointsAt, xpAt, statusAt)
			}

			if f.svc.PetRefreshSignal() != 1 {
				t.Errorf("pet refresh signal=%d, want 1", f.svc.PetRefreshSignal())
			}
		})
	}
}

func TestChangeStatusToCurrentStatusIsNoop(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	task := backend.seedTask(model.Task{Description: "done already", Priority: model.PriorityLow, Status: model.TaskStatusDone})

	f := newFixture(t, backend)
	f.loginAs(t)
	if err := f.svc.ReloadTasks(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}

	before := backend.callCount()
	res, err := f.svc.ChangeStatus(ctx, task.TaskID, model.TaskStatusDone)
	if err != nil {
		t.Fatalf("change status: %v", err)
	}
	if res.Changed {
		t.Error("expected no change")
	}
	if got := backend.callCount(); got != before {
		t.Errorf("network calls went %d → %d, want none", before, got)
	}
}

func TestCreateThenListRoundtrip(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	f := newFixture(t, backend)
	f.loginAs(t)

	err := f.svc.CreateTask(ctx, CreateTaskInput{Description: "write the report", Priority: model.PriorityHigh})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	tasks := f.svc.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(tasks))
	}
	got := tasks[0]
	if got.Description != "write the report" || got.Priority != model.PriorityHigh || got.Status != model.TaskStatusTodo {
		t.Fatalf("task=%+v", got)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	f := newFixture(t, backend)
	f.loginAs(t)

	cases := []struct {
		name string
		in   CreateTaskInput
		want error
	}{
		{"empty description", CreateTaskInput{Description: "  ", Priority: model.PriorityLow}, ErrDescriptionRequired},
		{"too long", CreateTaskInput{Description: strings.Repeat("x", 256), Priority: model.PriorityLow}, ErrDescriptionTooLong},
		{"bad priority", CreateTaskInput{Description: "ok", Priority: "URGENT"}, ErrInvalidPriority},
	}
	for _, tc := range cases {
		if err := f.svc.CreateTask(ctx, tc.in); !errors.Is(err, tc.want) {
			t.Errorf("%s: err=%v, want %v", tc.name, err, tc.want)
		}
	}
	if got := backend.callCount(); got != 0 {
		t.Errorf("validation failures issued %d network calls, want 0", got)
	}
}

func TestUpdateTaskEditsDescriptionAndDueDate(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	task := backend.seedTask(model.Task{Description: "old words", Priority: model.PriorityLow, Status: model.TaskStatusTodo})

	f := newFixture(t, backend)
	f.loginAs(t)
	if err := f.svc.ReloadTasks(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}

	desc := "new words"
	due := "2026-09-15"
	err := f.svc.UpdateTask(ctx, task.TaskID, model.UpdateTaskRequest{Description: &desc, DueDate: &due})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	got, ok := f.svc.Task(task.TaskID)
	if !ok {
		t.Fatal("task gone after update")
	}
	if got.Description != "new words" {
		t.Errorf("description=%q", got.Description)
	}
	if got.DueDate == nil || *got.DueDate != "2026-09-15" {
		t.Errorf("dueDate=%v", got.DueDate)
	}

	empty := "   "
	if err := f.svc.UpdateTask(ctx, task.TaskID, model.UpdateTaskRequest{Description: &empty}); !errors.Is(err, ErrDescriptionRequired) {
		t.Errorf("blank description: err=%v, want %v", err, ErrDescriptionRequired)
	}
}

func TestConcurrentReloadsAndReadsAreSafe(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	backend.pet = &model.Pet{PetID: 1, Name: "Draco", PointsTotal: 30}
	backend.seedTask(model.Task{Description: "one", Priority: model.PriorityLow, Status: model.TaskStatusTodo})
	backend.seedTask(model.Task{Description: "two", Priority: model.PriorityHigh, Status: model.TaskStatusTodo})

	f := newFixture(t, backend)
	f.loginAs(t)

	// Overlapping refreshes the way the dashboard issues them; run with
	// -race this catches unguarded snapshot access.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f.svc.ReloadTasks(ctx); err != nil {
				t.Errorf("reload: %v", err)
			}
			if err := f.svc.RefreshPet(ctx); err != nil {
				t.Errorf("refresh pet: %v", err)
			}
			_ = f.svc.Tasks()
			_, _ = f.svc.Pet()
			_ = f.svc.Tally()
			_ = f.svc.PetRefreshSignal()
		}()
	}
	wg.Wait()

	if got := len(f.svc.Tasks()); got != 2 {
		t.Errorf("tasks after concurrent reloads: %d, want 2", got)
	}
}

func TestCareGatesBlockWithoutNetwork(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		pet    model.Pet
		action func(*Service, context.Context) error
		want   error
		path   string
	}{
		{"feed needs 10 points", model.Pet{PetID: 1, PointsTotal: 9, Hunger: 50}, (*Service).FeedPet, ErrNotEnoughPoints, "POST /pet/feed"},
		{"feed blocked at full hunger", model.Pet{PetID: 1, PointsTotal: 99, Hunger: 100}, (*Service).FeedPet, ErrStatAtMax, "POST /pet/feed"},
		{"heal needs 20 points", model.Pet{PetID: 1, PointsTotal: 19, Health: 50}, (*Service).HealPet, ErrNotEnoughPoints, "POST /pet/heal"},
		{"heal blocked at full health", model.Pet{PetID: 1, PointsTotal: 99, Health: 100}, (*Service).HealPet, ErrStatAtMax, "POST /pet/heal"},
		{"boost needs 15 points", model.Pet{PetID: 1, PointsTotal: 14, Energy: 50}, (*Service).BoostEnergy, ErrNotEnoughPoints, "POST /pet/boost-energy"},
		{"boost blocked at full energy", model.Pet{PetID: 1, PointsTotal: 99, Energy: 100}, (*Service).BoostEnergy, ErrStatAtMax, "POST /pet/boost-energy"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			backend := newFakeBackend()
			pet := tc.pet
			backend.pet = &pet

			f := newFixture(t, backend)
			f.loginAs(t)
			if err := f.svc.RefreshPet(ctx); err != nil {
				t.Fatalf("refresh pet: %v", err)
			}

			if err := tc.action(f.svc, ctx); !errors.Is(err, tc.want) {
				t.Fatalf("err=%v, want %v", err, tc.want)
			}
			if at := backend.callIndex(tc.path); at != -1 {
				t.Errorf("gated action still hit the network: %v", backend.calls)
			}
		})
	}
}

func TestCareActionUpdatesSnapshotAndNotifies(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	backend.pet = &model.Pet{PetID: 1, Name: "Draco", PointsTotal: 50, Hunger: 40, Health: 80, Energy: 80}

	f := newFixture(t, backend)
	f.loginAs(t)

	var notified int
	f.svc.SetPointsChanged(func(total int) { notified = total })

	if err := f.svc.RefreshPet(ctx); err != nil {
		t.Fatalf("refresh pet: %v", err)
	}
	if err := f.svc.FeedPet(ctx); err != nil {
		t.Fatalf("feed: %v", err)
	}

	pet, ok := f.svc.Pet()
	if !ok {
		t.Fatal("expected a pet")
	}
	if pet.PointsTotal != 40 || pet.Hunger != 20 {
		t.Fatalf("pet after feed=%+v", pet)
	}
	if notified != 40 {
		t.Errorf("points-changed callback got %d, want 40", notified)
	}
}

func TestUnauthorizedClearsPersistedSession(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	f := newFixture(t, backend)

	// A stale token the backend rejects.
	if err := f.sess.Login(ctx, "stale", "ref", "test@test.com"); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	var fired bool
	f.client.SetOnUnauthorized(func() { fired = true })

	if err := f.svc.ReloadTasks(ctx); err == nil {
		t.Fatal("expected an error from the rejected call")
	}
	if !fired {
		t.Error("expected the forced-logout hook to fire")
	}
	for _, key := range []string{storage.KeyToken, storage.KeyRefreshToken, storage.KeyUserEmail} {
		got, err := f.repo.Get(ctx, key)
		if err != nil {
			t.Fatalf("get %s: %v", key, err)
		}
		if got != "" {
			t.Errorf("%s=%q after 401, want cleared", key, got)
		}
	}
}

func TestLoginRoutesByPetExistence(t *testing.T) {
	ctx := context.Background()

	t.Run("no pet yet goes to creation", func(t *testing.T) {
		backend := newFakeBackend()
		f := newFixture(t, backend)

		next, err := f.svc.Login(ctx, "test@test.com", "test")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if next != ViewCreatePet {
			t.Errorf("next=%s, want %s", next, ViewCreatePet)
		}
	})

	t.Run("existing pet goes to dashboard", func(t *testing.T) {
		backend := newFakeBackend()
		backend.pet = &model.Pet{PetID: 1, Name: "Draco"}
		f := newFixture(t, backend)

		next, err := f.svc.Login(ctx, "test@test.com", "test")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if next != ViewDashboard {
			t.Errorf("next=%s, want %s", next, ViewDashboard)
		}
	})
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	task := backend.seedTask(model.Task{Description: "precious", Priority: model.PriorityLow, Status: model.TaskStatusTodo})

	f := newFixture(t, backend)
	f.loginAs(t)
	if err := f.svc.ReloadTasks(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}

	f.svc.SetConfirm(func(string) bool { return false })
	before := backend.callCount()
	deleted, err := f.svc.DeleteTask(ctx, task.TaskID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted {
		t.Error("declined delete reported as deleted")
	}
	if got := backend.callCount(); got != before {
		t.Errorf("declined delete issued %d network calls", got-before)
	}
	if len(f.svc.Tasks()) != 1 {
		t.Error("task list changed after declined delete")
	}

	f.svc.SetConfirm(func(string) bool { return true })
	deleted, err = f.svc.DeleteTask(ctx, task.TaskID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Error("confirmed delete did not happen")
	}
	if len(f.svc.Tasks()) != 0 {
		t.Errorf("tasks after delete: %v", f.svc.Tasks())
	}
}

func TestAwardFailureStillCompletesTask(t *testing.T) {
	ctx := context.Background()
	backend := newFakeBackend()
	backend.pet = &model.Pet{PetID: 1, Name: "Draco"}
	backend.failPoints = true
	task := backend.seedTask(model.Task{Description: "unlucky", Priority: model.PriorityHigh, Status: model.TaskStatusTodo})

	f := newFixture(t, backend)
	f.loginAs(t)
	if err := f.svc.ReloadTasks(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}

	res, err := f.svc.ChangeStatus(ctx, task.TaskID, model.TaskStatusDone)
	if err != nil {
		t.Fatalf("change status: %v", err)
	}
	if !res.Changed {
		t.Fatal("status change should proceed despite the failed award")
	}
	if res.PointsErr == nil {
		t.Error("expected the points failure to be reported")
	}
	if res.ExperienceErr != nil {
		t.Errorf("xp award should still succeed: %v", res.ExperienceErr)
	}

	got, ok := f.svc.Task(task.TaskID)
	if !ok || got.Status != model.TaskStatusDone {
		t.Fatalf("task after completion=%+v ok=%v", got, ok)
	}
}
