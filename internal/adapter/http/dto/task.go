package dto

type PatientItem struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	RoomNumber  string `json:"roomNumber,omitempty"`
}

type AssigneeItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type TaskItem struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	Priority    string        `json:"priority"`
	Status      string        `json:"status"`
	Category    string        `json:"category"`
	DueDate     string        `json:"dueDate,omitempty"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
	Patient     *PatientItem  `json:"patient,omitempty"`
	AssignedTo  *AssigneeItem `json:"assignedTo,omitempty"`
}

type Pagination struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalTasks      int  `json:"totalTasks"`
	TasksPerPage    int  `json:"tasksPerPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

type TaskPage struct {
	Tasks      []TaskItem `json:"tasks"`
	Pagination Pagination `json:"pagination"`
}

// The request types omit nil fields when marshaled. That matters for the
// client side of the wire: an absent field means "leave unchanged", while an
// explicit null (which raw-JSON callers can still send) means "clear".
type PatientPayload struct {
	ID          *string `json:"id,omitempty" binding:"omitempty,max=64"`
	FirstName   string  `json:"firstName" binding:"required,max=100"`
	LastName    string  `json:"lastName" binding:"required,max=100"`
	DateOfBirth *string `json:"dateOfBirth,omitempty" binding:"omitempty"`
	RoomNumber  *string `json:"roomNumber,omitempty" binding:"omitempty,max=20"`
}

type AssigneePayload struct {
	ID   *string `json:"id,omitempty" binding:"omitempty,max=64"`
	Name string  `json:"name" binding:"required,max=100"`
	Role string  `json:"role" binding:"required,oneof=doctor nurse specialist"`
}

type CreateTaskRequest struct {
	Title       string           `json:"title" binding:"required,max=255"`
	Description *string          `json:"description,omitempty" binding:"omitempty,max=65535"`
	Notes       *string          `json:"notes,omitempty" binding:"omitempty,max=65535"`
	Priority    *string          `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	Status      *string          `json:"status,omitempty" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Category    *string          `json:"category,omitempty" binding:"omitempty,oneof=examination surgery medication consultation follow_up"`
	DueDate     *string          `json:"dueDate,omitempty" binding:"omitempty"`
	Patient     *PatientPayload  `json:"patient,omitempty" binding:"omitempty"`
	AssignedTo  *AssigneePayload `json:"assignedTo,omitempty" binding:"omitempty"`
}

type UpdateTaskRequest struct {
	Title       *string          `json:"title,omitempty" binding:"omitempty,max=255"`
	Description *string          `json:"description,omitempty" binding:"omitempty,max=65535"`
	Notes       *string          `json:"notes,omitempty" binding:"omitempty,max=65535"`
	Priority    *string          `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	Status      *string          `json:"status,omitempty" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Category    *string          `json:"category,omitempty" binding:"omitempty,oneof=examination surgery medication consultation follow_up"`
	DueDate     *string          `json:"dueDate,omitempty" binding:"omitempty"`
	Patient     *PatientPayload  `json:"patient,omitempty" binding:"omitempty"`
	AssignedTo  *AssigneePayload `json:"assignedTo,omitempty" binding:"omitempty"`
}

type SummarizeRequest struct {
	Text string `json:"text"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

type InferRequest struct {
	Text string `json:"text"`
}

type InferResponse struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    string       `json:"priority"`
	DueDate     string       `json:"dueDate,omitempty"`
	Patient     *PatientItem `json:"patient,omitempty"`
}
