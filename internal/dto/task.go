package dto

import (
	"time"

	"github.com/yukikurage/home-inventory-api/internal/models"
	"github.com/yukikurage/home-inventory-api/internal/utils"
)

// LocationRefDTO names the entity a task is attached to
type LocationRefDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Status        models.TaskStatus      `json:"status"`
	Priority      models.TaskPriority    `json:"priority"`
	DueDate       *time.Time             `json:"due_date"`
	IsRecurring   bool                   `json:"is_recurring"`
	Interval      *int                   `json:"interval"`
	Unit          *models.RecurrenceUnit `json:"unit"`
	NextDueDate   *time.Time             `json:"next_due_date"`
	LastCompleted *time.Time             `json:"last_completed"`
	ParentTaskID  *string                `json:"parent_task_id"`
	CreatorID     string                 `json:"creator_id"`
	AssigneeID    *string                `json:"assignee_id"`
	HomeID        *string                `json:"home_id"`
	RoomID        *string                `json:"room_id"`
	ItemID        *string                `json:"item_id"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
	Creator       *UserDTO               `json:"creator,omitempty"`
	Assignee      *UserDTO               `json:"assignee,omitempty"`
	Home          *LocationRefDTO        `json:"home,omitempty"`
	Room          *LocationRefDTO        `json:"room,omitempty"`
	Item          *LocationRefDTO        `json:"item,omitempty"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks      []TaskDTO                `json:"tasks"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// CompletionDTO is the result of completing a task
type CompletionDTO struct {
	Completed TaskDTO  `json:"completed"`
	Next      *TaskDTO `json:"next,omitempty"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:            task.ID,
		Title:         task.Title,
		Description:   task.Description,
		Status:        task.Status,
		Priority:      task.Priority,
		DueDate:       task.DueDate,
		IsRecurring:   task.IsRecurring,
		Interval:      task.Interval,
		Unit:          task.Unit,
		NextDueDate:   task.NextDueDate,
		LastCompleted: task.LastCompleted,
		ParentTaskID:  task.ParentTaskID,
		CreatorID:     task.CreatorID,
		AssigneeID:    task.AssigneeID,
		HomeID:        task.HomeID,
		RoomID:        task.RoomID,
		ItemID:        task.ItemID,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
		Creator:       optionalUser(task.Creator),
		Assignee:      optionalUser(task.Assignee),
	}

	if task.Home != nil {
		dto.Home = &LocationRefDTO{ID: task.Home.ID, Name: task.Home.Name}
	}
	if task.Room != nil {
		dto.Room = &LocationRefDTO{ID: task.Room.ID, Name: task.Room.Name}
	}
	if task.Item != nil {
		dto.Item = &LocationRefDTO{ID: task.Item.ID, Name: task.Item.Name}
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	out := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskDTO(t)
	}
	return out
}

// ToTaskListResponse converts a page of tasks with its pagination metadata
func ToTaskListResponse(tasks []models.Task, params utils.PaginationParams, total int64) TaskListResponse {
	return TaskListResponse{
		Tasks:      ToTaskDTOs(tasks),
		Pagination: params.Response(total),
	}
}

// ToCompletionDTO converts the outcome of completing a task
func ToCompletionDTO(completed *models.Task, next *models.Task) CompletionDTO {
	dto := CompletionDTO{Completed: ToTaskDTO(*completed)}
	if next != nil {
		n := ToTaskDTO(*next)
		dto.Next = &n
	}
	return dto
}
