package models

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

type RecurrenceUnit string

const (
	RecurrenceDaily   RecurrenceUnit = "DAILY"
	RecurrenceWeekly  RecurrenceUnit = "WEEKLY"
	RecurrenceMonthly RecurrenceUnit = "MONTHLY"
	RecurrenceYearly  RecurrenceUnit = "YEARLY"
)

func (u RecurrenceUnit) Valid() bool {
	switch u {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	}
	return false
}

// Task is a maintenance chore bound to exactly one home, room or item.
// Room and item tasks also carry their ancestor ids so that home level
// queries need no join.
type Task struct {
	BaseModel
	Title       string       `gorm:"type:varchar(255);not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	Priority    TaskPriority `gorm:"type:varchar(20);not null;default:'MEDIUM'" json:"priority"`
	DueDate     *time.Time   `json:"due_date"`

	IsRecurring   bool            `gorm:"not null;default:false" json:"is_recurring"`
	Interval      *int            `json:"interval"`
	Unit          *RecurrenceUnit `gorm:"type:varchar(20)" json:"unit"`
	NextDueDate   *time.Time      `json:"next_due_date"`
	LastCompleted *time.Time      `json:"last_completed"`
	ParentTaskID  *string         `gorm:"type:varchar(36);index" json:"parent_task_id"`

	CreatorID  string  `gorm:"type:varchar(36);not null;index" json:"creator_id"`
	AssigneeID *string `gorm:"type:varchar(36);index" json:"assignee_id"`
	HomeID     *string `gorm:"type:varchar(36);index" json:"home_id"`
	RoomID     *string `gorm:"type:varchar(36);index" json:"room_id"`
	ItemID     *string `gorm:"type:varchar(36);index" json:"item_id"`

	// Relations
	Creator  *User `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Assignee *User `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	Home     *Home `gorm:"foreignKey:HomeID" json:"home,omitempty"`
	Room     *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Item     *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

// Location returns the most specific location the task is bound to.
func (t *Task) Location() Location {
	switch {
	case t.ItemID != nil:
		return Location{Kind: LocationItem, ID: *t.ItemID}
	case t.RoomID != nil:
		return Location{Kind: LocationRoom, ID: *t.RoomID}
	case t.HomeID != nil:
		return Location{Kind: LocationHome, ID: *t.HomeID}
	}
	return Location{}
}

// RecurrenceComplete reports whether every field needed to spawn the next
// occurrence is present.
func (t *Task) RecurrenceComplete() bool {
	return t.IsRecurring && t.Interval != nil && *t.Interval > 0 && t.Unit != nil && t.DueDate != nil
}

// ChainRootID is the id every successor of this task points at.
func (t *Task) ChainRootID() string {
	if t.ParentTaskID != nil && *t.ParentTaskID != "" {
		return *t.ParentTaskID
	}
	return t.ID
}
