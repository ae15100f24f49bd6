package access

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"

	"github.com/yukikurage/home-inventory-api/internal/models"
)

// ErrNotFoundOrForbidden is returned both when the entity does not exist and
// when the caller lacks the required level, so callers cannot probe for ids.
var ErrNotFoundOrForbidden = errors.New("not found or insufficient permissions")

// Kind names an entity type the resolver can authorize.
type Kind string

const (
	KindHome Kind = "home"
	KindRoom Kind = "room"
	KindItem Kind = "item"
	KindTask Kind = "task"
)

// Ref points at one entity.
type Ref struct {
	Kind Kind
	ID   string
}

// RefFor converts a task location into a Ref.
func RefFor(loc models.Location) Ref {
	return Ref{Kind: Kind(loc.Kind), ID: loc.ID}
}

// Path is a location with its ancestors filled in.
type Path struct {
	HomeID string
	RoomID string
	ItemID string
}

// Resolver answers whether a user may read or write an entity. Every check is
// a single statement joining the entity up to its home.
type Resolver struct {
	db  *gorm.DB
	log logger.Logger
}

// NewResolver creates a new Resolver
func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db, log: logger.New("access")}
}

// WithTx returns a resolver that runs its checks inside tx.
func (r *Resolver) WithTx(tx *gorm.DB) *Resolver {
	return &Resolver{db: tx, log: r.log}
}

// Authorize checks level on the referenced entity.
func (r *Resolver) Authorize(ctx context.Context, userID string, ref Ref, level Level) error {
	var err error
	switch ref.Kind {
	case KindHome:
		_, err = r.Home(ctx, userID, ref.ID, level)
	case KindRoom:
		_, err = r.Room(ctx, userID, ref.ID, level)
	case KindItem:
		_, err = r.Item(ctx, userID, ref.ID, level)
	case KindTask:
		_, err = r.Task(ctx, userID, ref.ID, level)
	default:
		return fmt.Errorf("unknown entity kind %q", ref.Kind)
	}
	return err
}

// Home loads the home if the user holds level on it.
func (r *Resolver) Home(ctx context.Context, userID, homeID string, level Level) (*models.Home, error) {
	var home models.Home
	err := r.db.WithContext(ctx).
		Model(&models.Home{}).
		Scopes(Homes(userID, level)).
		Where("homes.id = ?", homeID).
		Take(&home).Error
	if err != nil {
		return nil, r.translate("Home", KindHome, homeID, err)
	}
	return &home, nil
}

// Room loads the room if the user holds level on its home.
func (r *Resolver) Room(ctx context.Context, userID, roomID string, level Level) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).
		Model(&models.Room{}).
		Scopes(Rooms(userID, level)).
		Where("rooms.id = ?", roomID).
		Take(&room).Error
	if err != nil {
		return nil, r.translate("Room", KindRoom, roomID, err)
	}
	return &room, nil
}

// Item loads the item if the user holds level on its room's home.
func (r *Resolver) Item(ctx context.Context, userID, itemID string, level Level) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Scopes(Items(userID, level)).
		Where("items.id = ?", itemID).
		Take(&item).Error
	if err != nil {
		return nil, r.translate("Item", KindItem, itemID, err)
	}
	return &item, nil
}

// Task loads the task if the user may act on it at level.
func (r *Resolver) Task(ctx context.Context, userID, taskID string, level Level) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Scopes(Tasks(userID, level)).
		Where("tasks.id = ?", taskID).
		Take(&task).Error
	if err != nil {
		return nil, r.translate("Task", KindTask, taskID, err)
	}
	return &task, nil
}

// Location authorizes a home, room or item and returns its ancestor ids from
// the same row.
func (r *Resolver) Location(ctx context.Context, userID string, loc models.Location, level Level) (Path, error) {
	var path Path
	query := r.db.WithContext(ctx)

	switch loc.Kind {
	case models.LocationHome:
		query = query.Table("homes").
			Select("homes.id AS home_id").
			Scopes(Homes(userID, level)).
			Where("homes.id = ?", loc.ID)
	case models.LocationRoom:
		query = query.Table("rooms").
			Select("homes.id AS home_id, rooms.id AS room_id").
			Scopes(Rooms(userID, level)).
			Where("rooms.id = ?", loc.ID)
	case models.LocationItem:
		query = query.Table("items").
			Select("homes.id AS home_id, rooms.id AS room_id, items.id AS item_id").
			Scopes(Items(userID, level)).
			Where("items.id = ?", loc.ID)
	default:
		return Path{}, fmt.Errorf("unknown location kind %q", loc.Kind)
	}

	result := query.Limit(1).Scan(&path)
	if result.Error != nil {
		return Path{}, r.translate("Location", Kind(loc.Kind), loc.ID, result.Error)
	}
	if result.RowsAffected == 0 || path.HomeID == "" {
		return Path{}, ErrNotFoundOrForbidden
	}
	return path, nil
}

func (r *Resolver) translate(fn string, kind Kind, id string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFoundOrForbidden
	}
	r.log.Function(fn).Er("authorization query failed", err, "kind", kind, "id", id)
	return fmt.Errorf("failed to authorize %s %s: %w", kind, id, err)
}
