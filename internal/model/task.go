package model

// TaskStatus is the lifecycle state of a task on the remote service.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusWaiting    TaskStatus = "waiting"
	TaskStatusScheduled  TaskStatus = "scheduled"
	TaskStatusSomeday    TaskStatus = "someday"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusArchived   TaskStatus = "archived"
)

// TaskStatuses lists every accepted status in display order.
var TaskStatuses = []TaskStatus{
	TaskStatusTodo,
	TaskStatusInProgress,
	TaskStatusWaiting,
	TaskStatusScheduled,
	TaskStatusSomeday,
	TaskStatusCompleted,
	TaskStatusArchived,
}

// Importance levels accepted by the API.
const (
	ImportanceLow      = 0
	ImportanceNormal   = 1
	ImportanceHigh     = 2
	ImportanceCritical = 3
)

// CreationSource tags where a task was created.
type CreationSource string

const (
	CreatedViaAPI    CreationSource = "api"
	CreatedViaWeb    CreationSource = "web"
	CreatedViaMobile CreationSource = "mobile"
)

// Task is a task as returned by the API. Timestamps are ISO-8601 strings.
type Task struct {
	ID               string         `json:"id"`
	UserID           string         `json:"user_id"`
	Title            string         `json:"title"`
	Description      string         `json:"description,omitempty"`
	Status           TaskStatus     `json:"status"`
	Importance       *int           `json:"importance,omitempty"`
	IsUrgent         *bool          `json:"is_urgent,omitempty"`
	DueDate          string         `json:"due_date,omitempty"`
	ScheduledDate    string         `json:"scheduled_date,omitempty"`
	ProjectID        string         `json:"project_id,omitempty"`
	EstimatedMinutes *int           `json:"estimated_minutes,omitempty"`
	CompletedAt      string         `json:"completed_at,omitempty"`
	CreatedAt        string         `json:"created_at"`
	UpdatedAt        string         `json:"updated_at"`
	CreatedVia       CreationSource `json:"created_via,omitempty"`
}

// TaskList is the body of GET /tasks.
type TaskList struct {
	Tasks      []Task     `json:"tasks"`
	Pagination Pagination `json:"pagination"`
}

// Pagination is the paging block shared by list responses.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}
