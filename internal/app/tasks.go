package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ProtoSG/momentum-front/internal/game"
	"github.com/ProtoSG/momentum-front/internal/model"
)

type CreateTaskInput struct {
	Description string
	Priority    model.TaskPriority
	DueDate     *string
}

// ReloadTasks replaces the local snapshot wholesale with the server's list.
func (s *Service) ReloadTasks(ctx context.Context) error {
	tasks, err := s.client.ListTasks(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
	return nil
}

func (s *Service) CreateTask(ctx context.Context, in CreateTaskInput) error {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return ErrDescriptionRequired
	}
	if len(desc) > 255 {
		return ErrDescriptionTooLong
	}
	if !in.Priority.IsValid() {
		return ErrInvalidPriority
	}

	req := model.CreateTaskRequest{
		Description: desc,
		Priority:    in.Priority,
		Status:      model.TaskStatusTodo,
		DueDate:     in.DueDate,
	}
	if _, err := s.client.CreateTask(ctx, req); err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return s.ReloadTasks(ctx)
}

// UpdateTask edits a task's description and/or due date via the full-update
// endpoint, then reloads the list.
func (s *Service) UpdateTask(ctx context.Context, id int64, req model.UpdateTaskRequest) error {
	if req.Description != nil {
		desc := strings.TrimSpace(*req.Description)
		if desc == "" {
			return ErrDescriptionRequired
		}
		if len(desc) > 255 {
			return ErrDescriptionTooLong
		}
		req.Description = &desc
	}
	if _, err := s.client.UpdateTask(ctx, id, req); err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return s.ReloadTasks(ctx)
}

// StatusResult reports what a status change did. Award failures are carried
// separately from the status-update outcome instead of being swallowed: the
// task may complete while the pet goes unrewarded, and callers must be able
// to say so.
type StatusResult struct {
	Changed   bool
	Completed bool

	PointsAwarded     int
	ExperienceAwarded int
	PointsErr         error
	ExperienceErr     error
}

// ChangeStatus moves a task to a new status. Changing to the current status
// is a no-op that issues no network calls. A transition into DONE first
// awards points, then experience, then updates the status; the awards are
// not rolled back and do not block the status update when they fail.
func (s *Service) ChangeStatus(ctx context.Context, id int64, status model.TaskStatus) (StatusResult, error) {
	var res StatusResult

	if !status.IsValid() {
		return res, ErrInvalidStatus
	}
	task, ok := s.Task(id)
	if !ok {
		return res, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}
	if task.Status == status {
		return res, nil
	}

	completing := status == model.TaskStatusDone && task.Status != model.TaskStatusDone
	if completing {
		points := game.PointsForPriority(task.Priority)
		xp := game.ExperienceForPriority(task.Priority)

		if err := s.client.AddPoints(ctx, model.PointsLedger{
			Amount:  points,
			Reason:  "Task completed: " + task.Description,
			RefType: "TASK",
			RefID:   task.TaskID,
		}); err != nil {
			s.log.Warn("points award failed", "task", id, "error", err)
			res.PointsErr = err
		} else {
			res.PointsAwarded = points
		}

		if _, err := s.client.AddExperience(ctx, xp); err != nil {
			s.log.Warn("experience award failed", "task", id, "error", err)
			res.ExperienceErr = err
		} else {
			res.ExperienceAwarded = xp
		}
	}

	if _, err := s.client.UpdateTaskStatus(ctx, id, status); err != nil {
		return res, fmt.Errorf("update status: %w", err)
	}
	res.Changed = true

	if err := s.ReloadTasks(ctx); err != nil {
		return res, err
	}
	if completing {
		res.Completed = true
		s.mu.Lock()
		s.petRefresh++
		s.mu.Unlock()
	}
	return res, nil
}

// DeleteTask asks for confirmation before issuing the call. Declining leaves
// the list untouched and performs no network activity.
func (s *Service) DeleteTask(ctx context.Context, id int64) (bool, error) {
	task, ok := s.Task(id)
	if !ok {
		return false, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}

	prompt := fmt.Sprintf("Delete mission #%d %q?", task.TaskID, task.Description)
	if s.confirm == nil || !s.confirm(prompt) {
		return false, nil
	}

	if err := s.client.DeleteTask(ctx, id); err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	if err := s.ReloadTasks(ctx); err != nil {
		return true, err
	}
	return true, nil
}
