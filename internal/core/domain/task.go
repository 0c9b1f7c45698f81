package domain

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank orders priorities for sorting: high before medium before low.
// Unrecognized values land in a trailing bucket instead of failing.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type Category string

const (
	CategoryExamination  Category = "examination"
	CategorySurgery      Category = "surgery"
	CategoryMedication   Category = "medication"
	CategoryConsultation Category = "consultation"
	CategoryFollowUp     Category = "follow_up"
)

type Role string

const (
	RoleDoctor     Role = "doctor"
	RoleNurse      Role = "nurse"
	RoleSpecialist Role = "specialist"
)

// Patient is owned inline by its task. Two tasks naming the same person
// carry independent copies.
type Patient struct {
	ID          string
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	RoomNumber  string
}

type Assignee struct {
	ID   string
	Name string
	Role Role
}

type Task struct {
	ID          string
	Title       string
	Description string
	Notes       string
	Priority    Priority
	Status      Status
	Category    Category
	DueDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Patient     *Patient
	AssignedTo  *Assignee
}

type CreateTaskInput struct {
	Title       string
	Description string
	Notes       string
	Priority    Priority
	Status      Status
	Category    Category
	DueDate     time.Time
	Patient     *Patient
	AssignedTo  *Assignee
}

// UpdateTaskInput is a partial merge: nil pointers leave the stored value
// untouched. The Set flags distinguish "field absent" from "field cleared"
// for values whose zero form is meaningful.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Notes          *string
	NotesSet       bool
	Priority       *Priority
	Status         *Status
	Category       *Category
	DueDate        *time.Time
	Patient        *Patient
	PatientSet     bool
	AssignedTo     *Assignee
	AssignedToSet  bool
}
