package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/home-inventory-api/internal/dto"
	apierrors "github.com/yukikurage/home-inventory-api/internal/errors"
	"github.com/yukikurage/home-inventory-api/internal/models"
	"github.com/yukikurage/home-inventory-api/internal/services"
	"github.com/yukikurage/home-inventory-api/internal/utils"
)

type TaskHandler struct {
	taskService       *services.TaskService
	suggestionService *services.SuggestionService
}

func NewTaskHandler(taskService *services.TaskService, suggestionService *services.SuggestionService) *TaskHandler {
	return &TaskHandler{
		taskService:       taskService,
		suggestionService: suggestionService,
	}
}

// ListTasks returns every task visible to the current user
// Supports status, assigned_to_me, due_before, sort=due_date, page and limit
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	input := services.ListTasksInput{
		UserID:        userID,
		SortByDueDate: c.Query("sort") == "due_date",
	}

	for _, raw := range c.QueryArray("status") {
		for _, s := range strings.Split(raw, ",") {
			status := models.TaskStatus(strings.ToUpper(strings.TrimSpace(s)))
			if status == "" {
				continue
			}
			if !status.Valid() {
				apierrors.BadRequest(c, fmt.Sprintf("Invalid status %q", s))
				return
			}
			input.Statuses = append(input.Statuses, status)
		}
	}

	if v := c.Query("assigned_to_me"); v != "" {
		assigned, err := strconv.ParseBool(v)
		if err != nil {
			apierrors.BadRequest(c, "Invalid assigned_to_me")
			return
		}
		input.AssignedToMe = assigned
	}

	if v := c.Query("due_before"); v != "" {
		due, err := parseDate(v)
		if err != nil {
			apierrors.BadRequest(c, "Invalid due_before")
			return
		}
		input.DueBefore = &due
	}

	params := utils.GetPaginationParams(c)
	input.Page = params.Page
	input.PageSize = params.Limit

	tasks, total, err := h.taskService.GetAllTasksForUser(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, params, total))
}

// RecentTasks returns the newest open tasks the user created or is assigned to
func (h *TaskHandler) RecentTasks(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.GetRecentTasks(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a new task bound to exactly one home, room or item
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	type CreateTaskRequest struct {
		Title       string                 `json:"title"`
		Description string                 `json:"description"`
		Status      models.TaskStatus      `json:"status"`
		Priority    models.TaskPriority    `json:"priority"`
		DueDate     *time.Time             `json:"due_date"`
		IsRecurring bool                   `json:"is_recurring"`
		Interval    *int                   `json:"interval"`
		Unit        *models.RecurrenceUnit `json:"unit"`
		HomeID      *string                `json:"home_id"`
		RoomID      *string                `json:"room_id"`
		ItemID      *string                `json:"item_id"`
		AssigneeID  *string                `json:"assignee_id"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input, err := services.NewCreateTaskInput(services.TaskFields{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		IsRecurring: req.IsRecurring,
		Interval:    req.Interval,
		Unit:        req.Unit,
		HomeID:      req.HomeID,
		RoomID:      req.RoomID,
		ItemID:      req.ItemID,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask updates an existing task. Only the fields present in the body
// change; null clears due_date and assignee_id.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	// Parse raw JSON to detect which fields were sent
	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	patch, err := decodeTaskPatch(raw)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	input, err := services.NewUpdateTaskInput(patch)
	if err != nil {
		respondError(c, err)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), c.Param("id"), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CompleteTask completes a task and returns the next occurrence if it recurs
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	completion, err := h.taskService.CompleteTask(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompletionDTO(completion.Completed, completion.Next))
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}

// TaskHistory lists all occurrences of a recurring task
func (h *TaskHandler) TaskHistory(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.GetTaskHistory(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// ListHomeTasks lists every task in a home
func (h *TaskHandler) ListHomeTasks(c *gin.Context) {
	h.listByLocation(c, h.taskService.GetTasksByHome)
}

// ListRoomTasks lists the tasks of a room and its items
func (h *TaskHandler) ListRoomTasks(c *gin.Context) {
	h.listByLocation(c, h.taskService.GetTasksByRoom)
}

// ListItemTasks lists the tasks of an item
func (h *TaskHandler) ListItemTasks(c *gin.Context) {
	h.listByLocation(c, h.taskService.GetTasksByItem)
}

func (h *TaskHandler) listByLocation(c *gin.Context, list func(ctx context.Context, id, userID string) ([]models.Task, error)) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	tasks, err := list(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// SuggestTasks asks the AI service for upkeep tasks for an item
func (h *TaskHandler) SuggestTasks(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	suggestions, err := h.suggestionService.SuggestTasks(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": suggestions,
	})
}

// decodeTaskPatch reads the fields present in a PATCH body.
func decodeTaskPatch(raw map[string]json.RawMessage) (services.TaskPatch, error) {
	var patch services.TaskPatch

	fields := []struct {
		key  string
		dest any
	}{
		{"title", &patch.Title},
		{"description", &patch.Description},
		{"status", &patch.Status},
		{"priority", &patch.Priority},
		{"due_date", &patch.DueDate},
		{"is_recurring", &patch.IsRecurring},
		{"interval", &patch.Interval},
		{"unit", &patch.Unit},
		{"assignee_id", &patch.AssigneeID},
	}
	for _, f := range fields {
		value, ok := raw[f.key]
		if !ok || isNull(value) {
			continue
		}
		if err := json.Unmarshal(value, f.dest); err != nil {
			return services.TaskPatch{}, fmt.Errorf("invalid %s", f.key)
		}
	}

	if value, ok := raw["due_date"]; ok && isNull(value) {
		patch.ClearDueDate = true
	}
	if value, ok := raw["assignee_id"]; ok && isNull(value) {
		patch.ClearAssignee = true
	}

	return patch, nil
}

func isNull(value json.RawMessage) bool {
	return strings.TrimSpace(string(value)) == "null"
}

// parseDate accepts RFC 3339 timestamps and plain dates.
func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, v)
}
