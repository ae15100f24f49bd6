package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yukikurage/home-inventory-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// ListWithHomeAccess lists the owner and every sharee of a home
	ListWithHomeAccess(ctx context.Context, homeID string) ([]models.User, error)

	WithTx(tx *gorm.DB) UserRepository
}

// HomeAccess is a home together with the caller's effective role on it.
type HomeAccess struct {
	Home models.Home
	Role string
}

// HomeRepository defines the interface for home and share data access
type HomeRepository interface {
	// Create creates a new home
	Create(ctx context.Context, home *models.Home) error

	// FindByID finds a home by ID with optional preloading
	FindByID(ctx context.Context, id string, preload ...string) (*models.Home, error)

	// ListForUser lists homes the user owns or has been shared
	ListForUser(ctx context.Context, userID string) ([]HomeAccess, error)

	// ListOwned lists homes owned by the user with their full contents
	ListOwned(ctx context.Context, userID string) ([]models.Home, error)

	// Update updates a home
	Update(ctx context.Context, home *models.Home) error

	// Delete deletes a home and everything inside it
	Delete(ctx context.Context, id string) error

	// UpsertShare creates a share or updates the role of an existing one
	UpsertShare(ctx context.Context, share *models.Share) error

	// ListShares lists shares of a home with their users
	ListShares(ctx context.Context, homeID string) ([]models.Share, error)

	// DeleteShare removes a share and reports how many rows were removed
	DeleteShare(ctx context.Context, homeID, userID string) (int64, error)

	WithTx(tx *gorm.DB) HomeRepository
}

// RoomRepository defines the interface for room data access
type RoomRepository interface {
	Create(ctx context.Context, room *models.Room) error
	FindByID(ctx context.Context, id string, preload ...string) (*models.Room, error)
	ListByHome(ctx context.Context, homeID string) ([]models.Room, error)
	Update(ctx context.Context, room *models.Room) error

	// Delete deletes a room together with its items, tasks and finishes
	Delete(ctx context.Context, id string) error

	WithTx(tx *gorm.DB) RoomRepository
}

// ItemRepository defines the interface for item data access
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	FindByID(ctx context.Context, id string, preload ...string) (*models.Item, error)
	ListByRoom(ctx context.Context, roomID string) ([]models.Item, error)
	Update(ctx context.Context, item *models.Item) error

	// Delete deletes an item together with its tasks
	Delete(ctx context.Context, id string) error

	WithTx(tx *gorm.DB) ItemRepository
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(ctx context.Context, id string, preload ...string) (*models.Task, error)

	// List retrieves tasks with filtering and pagination
	List(ctx context.Context, filter TaskFilter) ([]models.Task, int64, error)

	// ListChain lists the root of a recurrence chain and every occurrence pointing at it
	ListChain(ctx context.Context, rootID string) ([]models.Task, error)

	// Save writes every column of the task
	Save(ctx context.Context, task *models.Task) error

	// Delete hard deletes a single task
	Delete(ctx context.Context, id string) error

	WithTx(tx *gorm.DB) TaskRepository
}

// TaskRelations are the associations loaded with task responses.
var TaskRelations = []string{"Creator", "Assignee", "Home", "Room", "Item"}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	// VisibleTo limits results to tasks the user may read.
	VisibleTo string
	// InvolvedUserID limits results to tasks the user created or is assigned to.
	InvolvedUserID string

	HomeID     *string
	RoomID     *string
	ItemID     *string
	AssigneeID *string
	Statuses   []models.TaskStatus
	DueBefore  *time.Time

	SortByDueDate bool
	Page          int
	PageSize      int
}

// FinishRepository defines the interface for paint and flooring data access
type FinishRepository interface {
	CreatePaint(ctx context.Context, paint *models.Paint) error
	FindPaint(ctx context.Context, id string) (*models.Paint, error)
	ListPaints(ctx context.Context, scope FinishScope) ([]models.Paint, error)
	DeletePaint(ctx context.Context, id string) error

	CreateFlooring(ctx context.Context, flooring *models.Flooring) error
	FindFlooring(ctx context.Context, id string) (*models.Flooring, error)
	ListFloorings(ctx context.Context, scope FinishScope) ([]models.Flooring, error)
	DeleteFlooring(ctx context.Context, id string) error

	WithTx(tx *gorm.DB) FinishRepository
}

// FinishScope selects finishes of a whole home or of one room.
type FinishScope struct {
	HomeID string
	RoomID *string
}

// ImportRepository writes restored records and checks them for id clashes.
type ImportRepository interface {
	// HomeExists reports whether a home with the id is already stored
	HomeExists(ctx context.Context, id string) (bool, error)

	// ExistingIDs returns the subset of ids already stored in model's table
	ExistingIDs(ctx context.Context, model any, ids []string) ([]string, error)

	// Insert creates records; a primary key conflict is an error
	Insert(ctx context.Context, records any) (int64, error)

	WithTx(tx *gorm.DB) ImportRepository
}
