package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/yukikurage/home-inventory-api/internal/access"
	"github.com/yukikurage/home-inventory-api/internal/models"
	"github.com/yukikurage/home-inventory-api/internal/repository"
)

// FinishService manages paints and floorings. Each finish belongs to a home
// or to one of its rooms.
type FinishService struct {
	txService  *TransactionService
	resolver   *access.Resolver
	finishRepo repository.FinishRepository
}

// NewFinishService creates a new FinishService.
func NewFinishService(txService *TransactionService, resolver *access.Resolver, finishRepo repository.FinishRepository) *FinishService {
	return &FinishService{
		txService:  txService,
		resolver:   resolver,
		finishRepo: finishRepo,
	}
}

// FinishLocation selects a home or a room. Exactly one must be set.
type FinishLocation struct {
	HomeID *string
	RoomID *string
}

func (l FinishLocation) resolve() (models.Location, error) {
	return locationOf(l.HomeID, l.RoomID, nil)
}

// CreatePaint records a paint. Requires WRITE on the location.
func (s *FinishService) CreatePaint(ctx context.Context, userID string, loc FinishLocation, paint models.Paint) (*models.Paint, error) {
	if strings.TrimSpace(paint.Name) == "" {
		return nil, invalid("name", ErrNameRequired)
	}
	err := s.bind(ctx, userID, loc, func(ctx context.Context, tx *gorm.DB, path access.Path) error {
		paint.ID = ""
		paint.HomeID = path.HomeID
		paint.RoomID = optional(path.RoomID)
		return s.finishRepo.WithTx(tx).CreatePaint(ctx, &paint)
	})
	if err != nil {
		return nil, storeErr("create paint", err)
	}
	return &paint, nil
}

// ListPaints lists paints of a home, or of one room.
func (s *FinishService) ListPaints(ctx context.Context, userID string, loc FinishLocation) ([]models.Paint, error) {
	scope, err := s.readScope(ctx, userID, loc)
	if err != nil {
		return nil, storeErr("list paints", err)
	}
	paints, err := s.finishRepo.ListPaints(ctx, scope)
	if err != nil {
		return nil, storeErr("list paints", err)
	}
	return paints, nil
}

// DeletePaint removes a paint. Requires WRITE on its home.
func (s *FinishService) DeletePaint(ctx context.Context, paintID, userID string) error {
	err := s.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		repo := s.finishRepo.WithTx(tx)
		paint, err := repo.FindPaint(ctx, paintID)
		if err != nil {
			return notFound("delete paint", err)
		}
		if _, err := s.resolver.WithTx(tx).Home(ctx, userID, paint.HomeID, access.Write); err != nil {
			return err
		}
		return repo.DeletePaint(ctx, paintID)
	})
	return storeErr("delete paint", err)
}

// CreateFlooring records a flooring. Requires WRITE on the location.
func (s *FinishService) CreateFlooring(ctx context.Context, userID string, loc FinishLocation, flooring models.Flooring) (*models.Flooring, error) {
	if strings.TrimSpace(flooring.Name) == "" {
		return nil, invalid("name", ErrNameRequired)
	}
	err := s.bind(ctx, userID, loc, func(ctx context.Context, tx *gorm.DB, path access.Path) error {
		flooring.ID = ""
		flooring.HomeID = path.HomeID
		flooring.RoomID = optional(path.RoomID)
		return s.finishRepo.WithTx(tx).CreateFlooring(ctx, &flooring)
	})
	if err != nil {
		return nil, storeErr("create flooring", err)
	}
	return &flooring, nil
}

// ListFloorings lists floorings of a home, or of one room.
func (s *FinishService) ListFloorings(ctx context.Context, userID string, loc FinishLocation) ([]models.Flooring, error) {
	scope, err := s.readScope(ctx, userID, loc)
	if err != nil {
		return nil, storeErr("list floorings", err)
	}
	floorings, err := s.finishRepo.ListFloorings(ctx, scope)
	if err != nil {
		return nil, storeErr("list floorings", err)
	}
	return floorings, nil
}

// DeleteFlooring removes a flooring. Requires WRITE on its home.
func (s *FinishService) DeleteFlooring(ctx context.Context, flooringID, userID string) error {
	err := s.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		repo := s.finishRepo.WithTx(tx)
		flooring, err := repo.FindFlooring(ctx, flooringID)
		if err != nil {
			return notFound("delete flooring", err)
		}
		if _, err := s.resolver.WithTx(tx).Home(ctx, userID, flooring.HomeID, access.Write); err != nil {
			return err
		}
		return repo.DeleteFlooring(ctx, flooringID)
	})
	return storeErr("delete flooring", err)
}

func (s *FinishService) bind(
	ctx context.Context,
	userID string,
	loc FinishLocation,
	create func(context.Context, *gorm.DB, access.Path) error,
) error {
	target, err := loc.resolve()
	if err != nil {
		return err
	}
	return s.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		path, err := s.resolver.WithTx(tx).Location(ctx, userID, target, access.Write)
		if err != nil {
			return err
		}
		return create(ctx, tx, path)
	})
}

func (s *FinishService) readScope(ctx context.Context, userID string, loc FinishLocation) (repository.FinishScope, error) {
	target, err := loc.resolve()
	if err != nil {
		return repository.FinishScope{}, err
	}
	path, err := s.resolver.Location(ctx, userID, target, access.Read)
	if err != nil {
		return repository.FinishScope{}, err
	}
	return repository.FinishScope{HomeID: path.HomeID, RoomID: optional(path.RoomID)}, nil
}
