package model

// Wire types for the Momentum REST API. Field names and JSON tags follow the
// backend contract exactly; optional fields are pointers so omitted and zero
// values stay distinguishable.

type TaskStatus string

const (
	TaskStatusTodo     TaskStatus = "TODO"
	TaskStatusDone     TaskStatus = "DONE"
	TaskStatusArchived TaskStatus = "ARCHIVED"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusDone, TaskStatusArchived:
		return true
	default:
		return false
	}
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

type User struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

type AuthResponse struct {
	Email        string `json:"email"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Timezone     string `json:"timezone,omitempty"`
	Locale       string `json:"locale,omitempty"`
	DayStartHour *int   `json:"dayStartHour,omitempty"`
}

type Task struct {
	TaskID      int64        `json:"taskId"`
	UserID      int64        `json:"userId"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	DueDate     *string      `json:"dueDate,omitempty"`
	Priority    TaskPriority `json:"priority"`
	PointsValue *int         `json:"pointsValue,omitempty"`
}

type CreateTaskRequest struct {
	Description string       `json:"description"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	DueDate     *string      `json:"dueDate,omitempty"`
}

// UpdateTaskRequest is the full-update payload; nil fields are left
// untouched by the backend. Priority is immutable after creation in this
// client, so it is deliberately absent.
type UpdateTaskRequest struct {
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
}

type TaskStatusUpdate struct {
	Status TaskStatus `json:"status"`
}

type Pet struct {
	PetID       int64  `json:"petId"`
	UserID      int64  `json:"userId"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	PointsTotal int    `json:"pointsTotal"`
	Experience  int    `json:"experience"`
	URL         string `json:"url,omitempty"`
	Health      int    `json:"health"`
	Energy      int    `json:"energy"`
	Hunger      int    `json:"hunger"`
}

type CreatePetRequest struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// PointsLedger is a write-only record describing why points were granted.
// The client never reads ledger history back.
type PointsLedger struct {
	Amount  int    `json:"amount"`
	Reason  string `json:"reason"`
	RefType string `json:"refType,omitempty"`
	RefID   int64  `json:"refId,omitempty"`
}

type PetLevel struct {
	Level              int    `json:"level"`
	ExperienceRequired int    `json:"experienceRequired"`
	Name               string `json:"name"`
	Description        string `json:"description"`
}
