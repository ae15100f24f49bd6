package services

import (
	"context"
	"errors"
	"strings"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"

	"github.com/yukikurage/home-inventory-api/internal/access"
	"github.com/yukikurage/home-inventory-api/internal/models"
	"github.com/yukikurage/home-inventory-api/internal/repository"
)

// HomeService provides business logic for homes and their shares.
type HomeService struct {
	txService *TransactionService
	resolver  *access.Resolver
	homeRepo  repository.HomeRepository
	userRepo  repository.UserRepository
	log       logger.Logger
}

// NewHomeService creates a new HomeService.
func NewHomeService(
	txService *TransactionService,
	resolver *access.Resolver,
	homeRepo repository.HomeRepository,
	userRepo repository.UserRepository,
) *HomeService {
	return &HomeService{
		txService: txService,
		resolver:  resolver,
		homeRepo:  homeRepo,
		userRepo:  userRepo,
		log:       logger.New("homeService"),
	}
}

// HomeInput carries the editable fields of a home.
type HomeInput struct {
	Name        *string
	Address     *string
	Description *string
	Images      []string
}

// CreateHome creates a home owned by the user.
func (s *HomeService) CreateHome(ctx context.Context, userID string, input HomeInput) (*models.Home, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, invalid("name", ErrNameRequired)
	}

	home := &models.Home{UserID: userID}
	applyHomeInput(home, input)

	if err := s.homeRepo.Create(ctx, home); err != nil {
		return nil, storeErr("create home", err)
	}

	s.log.Function("CreateHome").Info("Home created", "homeID", home.ID, "userID", userID)
	return home, nil
}

// ListHomes lists homes the user owns or that are shared with them.
func (s *HomeService) ListHomes(ctx context.Context, userID string) ([]repository.HomeAccess, error) {
	homes, err := s.homeRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, storeErr("list homes", err)
	}
	return homes, nil
}

// GetHome returns a home with its rooms.
func (s *HomeService) GetHome(ctx context.Context, homeID, userID string) (*models.Home, error) {
	if _, err := s.resolver.Home(ctx, userID, homeID, access.Read); err != nil {
		return nil, storeErr("get home", err)
	}
	home, err := s.homeRepo.FindByID(ctx, homeID, "Owner", "Rooms")
	if err != nil {
		return nil, notFound("get home", err)
	}
	return home, nil
}

// UpdateHome applies a partial update. Requires WRITE.
func (s *HomeService) UpdateHome(ctx context.Context, homeID, userID string, input HomeInput) (*models.Home, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, invalid("name", ErrNameRequired)
	}

	var home *models.Home
	err := s.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		home, err = s.resolver.WithTx(tx).Home(ctx, userID, homeID, access.Write)
		if err != nil {
			return err
		}
		applyHomeInput(home, input)
		return s.homeRepo.WithTx(tx).Update(ctx, home)
	})
	if err != nil {
		return nil, storeErr("update home", err)
	}
	return home, nil
}

// DeleteHome removes a home and everything in it. Only the owner may do this.
func (s *HomeService) DeleteHome(ctx context.Context, homeID, userID string) error {
	err := s.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if _, err := s.resolver.WithTx(tx).Home(ctx, userID, homeID, access.Owner); err != nil {
			return err
		}
		return s.homeRepo.WithTx(tx).Delete(ctx, homeID)
	})
	if err != nil {
		return storeErr("delete home", err)
	}

	s.log.Function("DeleteHome").Info("Home deleted", "homeID", homeID, "userID", userID)
	return nil
}

// ShareHomeInput identifies the grantee by email.
type ShareHomeInput struct {
	Email string
	Role  models.ShareRole
}

// ShareHome grants or changes a user's role on a home. Only the owner may
// share.
func (s *HomeService) ShareHome(ctx context.Context, homeID, ownerID string, input ShareHomeInput) (*models.Share, error) {
	if !input.Role.Valid() {
		return nil, invalid("role", ErrInvalidShareRole)
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var share *models.Share
	err := s.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		home, err := s.resolver.WithTx(tx).Home(ctx, ownerID, homeID, access.Owner)
		if err != nil {
			return err
		}

		user, err := s.userRepo.WithTx(tx).FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return invalid("email", ErrUserNotFound)
			}
			return err
		}
		if user.ID == home.UserID {
			return invalid("email", ErrCannotShareOwner)
		}

		share = &models.Share{HomeID: home.ID, UserID: user.ID, Role: input.Role}
		if err := s.homeRepo.WithTx(tx).UpsertShare(ctx, share); err != nil {
			return err
		}
		share.User = user
		return nil
	})
	if err != nil {
		return nil, storeErr("share home", err)
	}

	s.log.Function("ShareHome").Info("Home shared", "homeID", homeID, "userID", share.UserID, "role", share.Role)
	return share, nil
}

// ListShares lists the shares of a home. Only the owner sees them.
func (s *HomeService) ListShares(ctx context.Context, homeID, userID string) ([]models.Share, error) {
	if _, err := s.resolver.Home(ctx, userID, homeID, access.Owner); err != nil {
		return nil, storeErr("list shares", err)
	}
	shares, err := s.homeRepo.ListShares(ctx, homeID)
	if err != nil {
		return nil, storeErr("list shares", err)
	}
	return shares, nil
}

// RemoveShare revokes a share. The owner may revoke any share; a sharee may
// remove their own.
func (s *HomeService) RemoveShare(ctx context.Context, homeID, actorID, userID string) error {
	level := access.Owner
	if actorID == userID {
		level = access.Read
	}

	err := s.txService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if _, err := s.resolver.WithTx(tx).Home(ctx, actorID, homeID, level); err != nil {
			return err
		}
		removed, err := s.homeRepo.WithTx(tx).DeleteShare(ctx, homeID, userID)
		if err != nil {
			return err
		}
		if removed == 0 {
			return ErrNotFoundOrForbidden
		}
		return nil
	})
	return storeErr("remove share", err)
}

// ListMembers lists the owner and sharees of a home, used to pick assignees.
func (s *HomeService) ListMembers(ctx context.Context, homeID, userID string) ([]models.User, error) {
	if _, err := s.resolver.Home(ctx, userID, homeID, access.Read); err != nil {
		return nil, storeErr("list members", err)
	}
	users, err := s.userRepo.ListWithHomeAccess(ctx, homeID)
	if err != nil {
		return nil, storeErr("list members", err)
	}
	return users, nil
}

func applyHomeInput(home *models.Home, input HomeInput) {
	if input.Name != nil {
		home.Name = strings.TrimSpace(*input.Name)
	}
	if input.Address != nil {
		home.Address = *input.Address
	}
	if input.Description != nil {
		home.Description = *input.Description
	}
	if input.Images != nil {
		home.Images = input.Images
	}
}

// notFound maps a missing row found after authorization to the merged
// not-found error.
func notFound(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFoundOrForbidden
	}
	return storeErr(op, err)
}
