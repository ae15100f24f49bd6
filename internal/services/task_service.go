package services

import (
	"context"
	"errors"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"

	"github.com/yukikurage/home-inventory-api/internal/access"
	"github.com/yukikurage/home-inventory-api/internal/constants"
	"github.com/yukikurage/home-inventory-api/internal/models"
	"github.com/yukikurage/home-inventory-api/internal/repository"
)

// TaskService handles task business logic
type TaskService struct {
	txService *TransactionService
	resolver  *access.Resolver
	taskRepo  repository.TaskRepository
	now       func() time.Time
	log       logger.Logger
}

// NewTaskService creates a new TaskService
func NewTaskService(txService *TransactionService, resolver *access.Resolver, taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		txService: txService,
		resolver:  resolver,
		taskRepo:  taskRepo,
		now:       time.Now,
		log:       logger.New("taskService"),
	}
}

// Completion is the outcome of completing a task. Next is nil unless the
// task recurs.
type Completion struct {
	Completed *models.Task `json:"completed"`
	Next      *models.Task `json:"next,omitempty"`
}

// ListTasksInput represents filters for listing tasks
type ListTasksInput struct {
	UserID        string
	Statuses      []models.TaskStatus
	AssignedToMe  bool
	DueBefore     *time.Time
	SortByDueDate bool
	Page          int
	PageSize      int
}

// CreateTask creates a new task
func (s *TaskService) CreateTask(ctx context.Context, userID string, input CreateTaskInput) (*models.Task, error) {
	log := s.log.Function("CreateTask").TraceFromContext(ctx)

	var created *models.Task
	err := s.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		resolver := s.resolver.WithTx(tx)
		repo := s.taskRepo.WithTx(tx)

		path, err := resolver.Location(ctx, userID, input.Location(), access.Write)
		if err != nil {
			return err
		}

		f := input.Fields()
		if f.AssigneeID != nil {
			if err := checkAssignee(ctx, resolver, *f.AssigneeID, input.Location()); err != nil {
				return err
			}
		}

		task := &models.Task{
			Title:       f.Title,
			Description: f.Description,
			Status:      f.Status,
			Priority:    f.Priority,
			DueDate:     f.DueDate,
			IsRecurring: f.IsRecurring,
			Interval:    f.Interval,
			Unit:        f.Unit,
			CreatorID:   userID,
			AssigneeID:  f.AssigneeID,
			HomeID:      optional(path.HomeID),
			RoomID:      optional(path.RoomID),
			ItemID:      optional(path.ItemID),
		}
		if err := refreshNextDueDate(task); err != nil {
			return err
		}

		if err := repo.Create(ctx, task); err != nil {
			return err
		}

		created, err = repo.FindByID(ctx, task.ID, repository.TaskRelations...)
		return err
	})
	if err != nil {
		return nil, storeErr("create task", err)
	}

	log.Info("Task created", "taskID", created.ID, "location", input.Location().Kind)
	return created, nil
}

// UpdateTask applies a partial update. Location fields never change; the
// assignee is checked against the stored location.
func (s *TaskService) UpdateTask(ctx context.Context, taskID, userID string, input UpdateTaskInput) (*models.Task, error) {
	var updated *models.Task
	err := s.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		resolver := s.resolver.WithTx(tx)
		repo := s.taskRepo.WithTx(tx)

		task, err := resolver.Task(ctx, userID, taskID, access.Write)
		if err != nil {
			return err
		}

		recurrenceChanged, assigneeChanged := input.applyTo(task)

		if task.IsRecurring {
			if err := requireRecurrence(task.Interval, task.Unit, task.DueDate); err != nil {
				return err
			}
		}
		if recurrenceChanged {
			if err := refreshNextDueDate(task); err != nil {
				return err
			}
		}
		if assigneeChanged && task.AssigneeID != nil {
			if err := checkAssignee(ctx, resolver, *task.AssigneeID, task.Location()); err != nil {
				return err
			}
		}

		if err := repo.Save(ctx, task); err != nil {
			return err
		}

		updated, err = repo.FindByID(ctx, task.ID, repository.TaskRelations...)
		return err
	})
	if err != nil {
		return nil, storeErr("update task", err)
	}

	return updated, nil
}

// CompleteTask marks the task COMPLETED and, when it recurs, inserts the next
// occurrence in the same transaction.
func (s *TaskService) CompleteTask(ctx context.Context, taskID, userID string) (*Completion, error) {
	log := s.log.Function("CompleteTask").TraceFromContext(ctx)

	result := &Completion{}
	err := s.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		resolver := s.resolver.WithTx(tx)
		repo := s.taskRepo.WithTx(tx)

		task, err := resolver.Task(ctx, userID, taskID, access.Fulfil)
		if err != nil {
			return err
		}

		// A second completion must not spawn a second successor.
		if task.Status == models.TaskStatusCompleted {
			result.Completed, err = repo.FindByID(ctx, task.ID, repository.TaskRelations...)
			return err
		}

		spawn := task.RecurrenceComplete()

		completedAt := s.now()
		task.Status = models.TaskStatusCompleted
		task.LastCompleted = &completedAt
		if err := repo.Save(ctx, task); err != nil {
			return err
		}

		if spawn {
			next, err := successorOf(task)
			if err != nil {
				return err
			}
			if err := repo.Create(ctx, next); err != nil {
				return err
			}
			if result.Next, err = repo.FindByID(ctx, next.ID, repository.TaskRelations...); err != nil {
				return err
			}
		}

		result.Completed, err = repo.FindByID(ctx, task.ID, repository.TaskRelations...)
		return err
	})
	if err != nil {
		return nil, storeErr("complete task", err)
	}

	if result.Next != nil {
		log.Info("Recurring task completed", "taskID", taskID, "nextTaskID", result.Next.ID)
	}
	return result, nil
}

// DeleteTask hard deletes one task. Other occurrences of its chain are kept.
func (s *TaskService) DeleteTask(ctx context.Context, taskID, userID string) error {
	err := s.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if _, err := s.resolver.WithTx(tx).Task(ctx, userID, taskID, access.Fulfil); err != nil {
			return err
		}
		return s.taskRepo.WithTx(tx).Delete(ctx, taskID)
	})
	return storeErr("delete task", err)
}

// GetTask returns a task the user may read
func (s *TaskService) GetTask(ctx context.Context, taskID, userID string) (*models.Task, error) {
	var task *models.Task
	err := s.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if _, err := s.resolver.WithTx(tx).Task(ctx, userID, taskID, access.Read); err != nil {
			return err
		}
		found, err := s.taskRepo.WithTx(tx).FindByID(ctx, taskID, repository.TaskRelations...)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFoundOrForbidden
			}
			return err
		}
		task = found
		return nil
	})
	if err != nil {
		return nil, storeErr("get task", err)
	}
	return task, nil
}

// GetTasksByHome lists every task in a home, including room and item tasks
func (s *TaskService) GetTasksByHome(ctx context.Context, homeID, userID string) ([]models.Task, error) {
	if _, err := s.resolver.Home(ctx, userID, homeID, access.Read); err != nil {
		return nil, storeErr("list home tasks", err)
	}
	return s.listAll(ctx, "list home tasks", repository.TaskFilter{HomeID: &homeID})
}

// GetTasksByRoom lists every task in a room, including item tasks
func (s *TaskService) GetTasksByRoom(ctx context.Context, roomID, userID string) ([]models.Task, error) {
	if _, err := s.resolver.Room(ctx, userID, roomID, access.Read); err != nil {
		return nil, storeErr("list room tasks", err)
	}
	return s.listAll(ctx, "list room tasks", repository.TaskFilter{RoomID: &roomID})
}

// GetTasksByItem lists the tasks bound to an item
func (s *TaskService) GetTasksByItem(ctx context.Context, itemID, userID string) ([]models.Task, error) {
	if _, err := s.resolver.Item(ctx, userID, itemID, access.Read); err != nil {
		return nil, storeErr("list item tasks", err)
	}
	return s.listAll(ctx, "list item tasks", repository.TaskFilter{ItemID: &itemID})
}

// GetAllTasksForUser lists tasks the user created, is assigned to, or can
// read through a home they own or share.
func (s *TaskService) GetAllTasksForUser(ctx context.Context, input ListTasksInput) ([]models.Task, int64, error) {
	filter := repository.TaskFilter{
		VisibleTo:     input.UserID,
		Statuses:      input.Statuses,
		DueBefore:     input.DueBefore,
		SortByDueDate: input.SortByDueDate,
		Page:          input.Page,
		PageSize:      input.PageSize,
	}
	if input.AssignedToMe {
		filter.AssigneeID = &input.UserID
	}

	tasks, total, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, storeErr("list tasks", err)
	}
	return tasks, total, nil
}

// GetRecentTasks returns the newest open tasks the user created or is assigned to
func (s *TaskService) GetRecentTasks(ctx context.Context, userID string) ([]models.Task, error) {
	tasks, _, err := s.taskRepo.List(ctx, repository.TaskFilter{
		InvolvedUserID: userID,
		Statuses:       []models.TaskStatus{models.TaskStatusPending, models.TaskStatusInProgress},
		Page:           1,
		PageSize:       constants.RecentTasksLimit,
	})
	if err != nil {
		return nil, storeErr("list recent tasks", err)
	}
	return tasks, nil
}

// GetTaskHistory lists every occurrence of the task's recurrence chain
func (s *TaskService) GetTaskHistory(ctx context.Context, taskID, userID string) ([]models.Task, error) {
	task, err := s.resolver.Task(ctx, userID, taskID, access.Read)
	if err != nil {
		return nil, storeErr("task history", err)
	}
	tasks, err := s.taskRepo.ListChain(ctx, task.ChainRootID())
	if err != nil {
		return nil, storeErr("task history", err)
	}
	return tasks, nil
}

func (s *TaskService) listAll(ctx context.Context, op string, filter repository.TaskFilter) ([]models.Task, error) {
	tasks, _, err := s.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, storeErr(op, err)
	}
	return tasks, nil
}

// checkAssignee requires the assignee to hold READ on the location.
func checkAssignee(ctx context.Context, resolver *access.Resolver, assigneeID string, loc models.Location) error {
	_, err := resolver.Location(ctx, assigneeID, loc, access.Read)
	if errors.Is(err, access.ErrNotFoundOrForbidden) {
		return invalid("assignee_id", ErrInvalidAssignee)
	}
	return err
}

// refreshNextDueDate keeps NextDueDate one period after DueDate for
// recurring tasks and clears it otherwise.
func refreshNextDueDate(task *models.Task) error {
	if !task.RecurrenceComplete() {
		task.NextDueDate = nil
		return nil
	}
	next, err := Advance(*task.DueDate, *task.Interval, *task.Unit)
	if err != nil {
		return err
	}
	task.NextDueDate = &next
	return nil
}

// successorOf builds the next PENDING occurrence of a recurring task.
func successorOf(task *models.Task) (*models.Task, error) {
	due, err := Advance(*task.DueDate, *task.Interval, *task.Unit)
	if err != nil {
		return nil, err
	}
	following, err := Advance(due, *task.Interval, *task.Unit)
	if err != nil {
		return nil, err
	}

	interval := *task.Interval
	unit := *task.Unit
	root := task.ChainRootID()

	return &models.Task{
		Title:        task.Title,
		Description:  task.Description,
		Status:       models.TaskStatusPending,
		Priority:     task.Priority,
		DueDate:      &due,
		IsRecurring:  true,
		Interval:     &interval,
		Unit:         &unit,
		NextDueDate:  &following,
		ParentTaskID: &root,
		CreatorID:    task.CreatorID,
		AssigneeID:   task.AssigneeID,
		HomeID:       task.HomeID,
		RoomID:       task.RoomID,
		ItemID:       task.ItemID,
	}, nil
}

func optional(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
