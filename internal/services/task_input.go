package services

import (
	"strings"
	"time"

	"github.com/yukikurage/home-inventory-api/internal/models"
)

// TaskFields is the raw, unchecked shape of a new task.
type TaskFields struct {
	Title       string
	Description string
	Status      models.TaskStatus
	Priority    models.TaskPriority
	DueDate     *time.Time
	IsRecurring bool
	Interval    *int
	Unit        *models.RecurrenceUnit
	HomeID      *string
	RoomID      *string
	ItemID      *string
	AssigneeID  *string
}

// CreateTaskInput is a validated TaskFields. The zero value is not usable;
// build one with NewCreateTaskInput.
type CreateTaskInput struct {
	fields   TaskFields
	location models.Location
}

// NewCreateTaskInput checks field combinations before anything touches the
// store. The returned error is always a *ValidationError.
func NewCreateTaskInput(f TaskFields) (CreateTaskInput, error) {
	loc, err := locationOf(f.HomeID, f.RoomID, f.ItemID)
	if err != nil {
		return CreateTaskInput{}, err
	}

	f.Title = strings.TrimSpace(f.Title)
	if f.Title == "" {
		return CreateTaskInput{}, invalid("title", ErrTitleRequired)
	}

	if f.Status == "" {
		f.Status = models.TaskStatusPending
	}
	if !f.Status.Valid() {
		return CreateTaskInput{}, invalid("status", ErrInvalidStatus)
	}
	if f.Priority == "" {
		f.Priority = models.TaskPriorityMedium
	}
	if !f.Priority.Valid() {
		return CreateTaskInput{}, invalid("priority", ErrInvalidPriority)
	}

	if err := checkRecurrenceFields(f.Interval, f.Unit); err != nil {
		return CreateTaskInput{}, err
	}
	if f.IsRecurring {
		if err := requireRecurrence(f.Interval, f.Unit, f.DueDate); err != nil {
			return CreateTaskInput{}, err
		}
	}

	f.AssigneeID = nonEmpty(f.AssigneeID)
	f.HomeID, f.RoomID, f.ItemID = nil, nil, nil

	return CreateTaskInput{fields: f, location: loc}, nil
}

// Location is the single place the task will be bound to.
func (in CreateTaskInput) Location() models.Location {
	return in.location
}

// Fields returns the normalized fields.
func (in CreateTaskInput) Fields() TaskFields {
	return in.fields
}

// TaskPatch carries the fields an update may change. Nil means unchanged.
// Location fields are deliberately absent: a task never moves.
type TaskPatch struct {
	Title         *string
	Description   *string
	Status        *models.TaskStatus
	Priority      *models.TaskPriority
	DueDate       *time.Time
	ClearDueDate  bool
	IsRecurring   *bool
	Interval      *int
	Unit          *models.RecurrenceUnit
	AssigneeID    *string
	ClearAssignee bool
}

// UpdateTaskInput is a validated TaskPatch.
type UpdateTaskInput struct {
	patch TaskPatch
}

// NewUpdateTaskInput checks each present field on its own. Combinations that
// depend on the stored row are checked after the merge.
func NewUpdateTaskInput(p TaskPatch) (UpdateTaskInput, error) {
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return UpdateTaskInput{}, invalid("title", ErrTitleRequired)
		}
		p.Title = &title
	}
	if p.Status != nil && !p.Status.Valid() {
		return UpdateTaskInput{}, invalid("status", ErrInvalidStatus)
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return UpdateTaskInput{}, invalid("priority", ErrInvalidPriority)
	}
	if err := checkRecurrenceFields(p.Interval, p.Unit); err != nil {
		return UpdateTaskInput{}, err
	}
	p.AssigneeID = nonEmpty(p.AssigneeID)
	return UpdateTaskInput{patch: p}, nil
}

// applyTo merges the patch into task and reports which groups changed.
func (in UpdateTaskInput) applyTo(task *models.Task) (recurrenceChanged, assigneeChanged bool) {
	p := in.patch

	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.Status != nil {
		task.Status = *p.Status
	}
	if p.Priority != nil {
		task.Priority = *p.Priority
	}
	if p.ClearDueDate {
		task.DueDate = nil
		recurrenceChanged = true
	} else if p.DueDate != nil {
		task.DueDate = p.DueDate
		recurrenceChanged = true
	}
	if p.IsRecurring != nil {
		task.IsRecurring = *p.IsRecurring
		recurrenceChanged = true
	}
	if p.Interval != nil {
		task.Interval = p.Interval
		recurrenceChanged = true
	}
	if p.Unit != nil {
		task.Unit = p.Unit
		recurrenceChanged = true
	}

	switch {
	case p.ClearAssignee:
		assigneeChanged = task.AssigneeID != nil
		task.AssigneeID = nil
	case p.AssigneeID != nil:
		assigneeChanged = task.AssigneeID == nil || *task.AssigneeID != *p.AssigneeID
		task.AssigneeID = p.AssigneeID
	}

	return recurrenceChanged, assigneeChanged
}

func locationOf(homeID, roomID, itemID *string) (models.Location, error) {
	var (
		loc   models.Location
		count int
	)
	if id := nonEmpty(homeID); id != nil {
		loc = models.Location{Kind: models.LocationHome, ID: *id}
		count++
	}
	if id := nonEmpty(roomID); id != nil {
		loc = models.Location{Kind: models.LocationRoom, ID: *id}
		count++
	}
	if id := nonEmpty(itemID); id != nil {
		loc = models.Location{Kind: models.LocationItem, ID: *id}
		count++
	}
	if count != 1 {
		return models.Location{}, invalid("location", ErrInvalidLocation)
	}
	return loc, nil
}

func checkRecurrenceFields(interval *int, unit *models.RecurrenceUnit) error {
	if interval != nil && *interval <= 0 {
		return &ValidationError{Field: "interval", Reason: "interval must be a positive integer", Err: ErrInvalidRecurrence}
	}
	if unit != nil && !unit.Valid() {
		return &ValidationError{Field: "unit", Reason: "unit must be DAILY, WEEKLY, MONTHLY or YEARLY", Err: ErrInvalidRecurrence}
	}
	return nil
}

func requireRecurrence(interval *int, unit *models.RecurrenceUnit, dueDate *time.Time) error {
	var missing []string
	if interval == nil {
		missing = append(missing, "interval")
	}
	if unit == nil {
		missing = append(missing, "unit")
	}
	if dueDate == nil {
		missing = append(missing, "due_date")
	}
	if len(missing) > 0 {
		return &ValidationError{
			Field:  strings.Join(missing, ","),
			Reason: "required when the task is recurring",
			Err:    ErrInvalidRecurrence,
		}
	}
	return checkRecurrenceFields(interval, unit)
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
