package game

import (
	"github.com/ProtoSG/momentum-front/internal/model"
)

// Tally holds the display counters derived from the current task list.
// EstimatedPoints is a local approximation summed from completed-task
// priorities; the server's pointsTotal is authoritative and the two can
// diverge between refreshes.
type Tally struct {
	Pending         int
	Completed       int
	Archived        int
	EstimatedPoints int
}

func TallyTasks(tasks []model.Task) Tally {
	var t Tally
	for _, task := range tasks {
		switch task.Status {
		case model.TaskStatusTodo:
			t.Pending++
		case model.TaskStatusDone:
			t.Completed++
			t.EstimatedPoints += PointsForPriority(task.Priority)
		case model.TaskStatusArchived:
			t.Archived++
		}
	}
	return t
}
