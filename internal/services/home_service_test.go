package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/yukikurage/home-inventory-api/internal/access"
	"github.com/yukikurage/home-inventory-api/internal/models"
	"github.com/yukikurage/home-inventory-api/internal/repository"
)

type HomeServiceTestSuite struct {
	suite.Suite
	db       *gorm.DB
	fx       fixture
	ctx      context.Context
	homes    *HomeService
	rooms    *RoomService
	items    *ItemService
	tasks    *TaskService
	finishes *FinishService

	owner  *models.User
	friend *models.User
}

func (s *HomeServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.fx = fixture{t: s.T(), db: s.db}
	s.ctx = context.Background()

	txService := NewTransactionService(s.db, 5*time.Second)
	resolver := access.NewResolver(s.db)
	s.homes = NewHomeService(txService, resolver, repository.NewHomeRepository(s.db), repository.NewUserRepository(s.db))
	s.rooms = NewRoomService(txService, resolver, repository.NewRoomRepository(s.db))
	s.items = NewItemService(txService, resolver, repository.NewItemRepository(s.db))
	s.tasks = NewTaskService(txService, resolver, repository.NewTaskRepository(s.db))
	s.finishes = NewFinishService(txService, resolver, repository.NewFinishRepository(s.db))

	s.owner = s.fx.user("owner@example.com")
	s.friend = s.fx.user("friend@example.com")
}

func (s *HomeServiceTestSuite) createHome(name string) *models.Home {
	home, err := s.homes.CreateHome(s.ctx, s.owner.ID, HomeInput{Name: &name, Images: []string{"front.jpg"}})
	s.Require().NoError(err)
	return home
}

func (s *HomeServiceTestSuite) TestCreateHome_RequiresName() {
	blank := "  "
	_, err := s.homes.CreateHome(s.ctx, s.owner.ID, HomeInput{Name: &blank})
	s.ErrorIs(err, ErrNameRequired)
}

func (s *HomeServiceTestSuite) TestListHomes_ReportsEffectiveRole() {
	own := s.createHome("Own")
	other := s.fx.home(s.friend, "Friend's")
	s.fx.share(other, s.owner, models.ShareRoleRead)
	s.fx.home(s.friend, "Private")

	homes, err := s.homes.ListHomes(s.ctx, s.owner.ID)
	s.Require().NoError(err)
	s.Require().Len(homes, 2)

	roles := map[string]string{}
	for _, h := range homes {
		roles[h.Home.ID] = h.Role
	}
	s.Equal(repository.RoleOwner, roles[own.ID])
	s.Equal("READ", roles[other.ID])
}

func (s *HomeServiceTestSuite) TestShareHome_Lifecycle() {
	home := s.createHome("Cabin")

	share, err := s.homes.ShareHome(s.ctx, home.ID, s.owner.ID, ShareHomeInput{Email: "FRIEND@example.com", Role: models.ShareRoleRead})
	s.Require().NoError(err)
	s.Equal(models.ShareRoleRead, share.Role)

	_, err = s.homes.GetHome(s.ctx, home.ID, s.friend.ID)
	s.Require().NoError(err)

	name := "Renamed"
	_, err = s.homes.UpdateHome(s.ctx, home.ID, s.friend.ID, HomeInput{Name: &name})
	s.ErrorIs(err, ErrNotFoundOrForbidden)

	upgraded, err := s.homes.ShareHome(s.ctx, home.ID, s.owner.ID, ShareHomeInput{Email: "friend@example.com", Role: models.ShareRoleWrite})
	s.Require().NoError(err)
	s.Equal(share.ID, upgraded.ID)
	s.Equal(models.ShareRoleWrite, upgraded.Role)

	updated, err := s.homes.UpdateHome(s.ctx, home.ID, s.friend.ID, HomeInput{Name: &name})
	s.Require().NoError(err)
	s.Equal("Renamed", updated.Name)
	s.Equal([]string{"front.jpg"}, []string(updated.Images))

	shares, err := s.homes.ListShares(s.ctx, home.ID, s.owner.ID)
	s.Require().NoError(err)
	s.Require().Len(shares, 1)
	s.Equal(s.friend.Email, shares[0].User.Email)

	_, err = s.homes.ListShares(s.ctx, home.ID, s.friend.ID)
	s.ErrorIs(err, ErrNotFoundOrForbidden)

	members, err := s.homes.ListMembers(s.ctx, home.ID, s.friend.ID)
	s.Require().NoError(err)
	s.Len(members, 2)

	s.Require().NoError(s.homes.RemoveShare(s.ctx, home.ID, s.friend.ID, s.friend.ID))
	_, err = s.homes.GetHome(s.ctx, home.ID, s.friend.ID)
	s.ErrorIs(err, ErrNotFoundOrForbidden)

	s.ErrorIs(s.homes.RemoveShare(s.ctx, home.ID, s.owner.ID, s.friend.ID), ErrNotFoundOrForbidden)
}

func (s *HomeServiceTestSuite) TestShareHome_Rejects() {
	home := s.createHome("Cabin")

	_, err := s.homes.ShareHome(s.ctx, home.ID, s.owner.ID, ShareHomeInput{Email: "friend@example.com", Role: "ADMIN"})
	s.ErrorIs(err, ErrInvalidShareRole)

	_, err = s.homes.ShareHome(s.ctx, home.ID, s.owner.ID, ShareHomeInput{Email: "owner@example.com", Role: models.ShareRoleRead})
	s.ErrorIs(err, ErrCannotShareOwner)

	_, err = s.homes.ShareHome(s.ctx, home.ID, s.owner.ID, ShareHomeInput{Email: "nobody@example.com", Role: models.ShareRoleRead})
	s.ErrorIs(err, ErrUserNotFound)

	s.fx.share(home, s.friend, models.ShareRoleWrite)
	_, err = s.homes.ShareHome(s.ctx, home.ID, s.friend.ID, ShareHomeInput{Email: "owner@example.com", Role: models.ShareRoleRead})
	s.ErrorIs(err, ErrNotFoundOrForbidden)
}

func (s *HomeServiceTestSuite) TestDeleteHome_OwnerOnlyAndCascades() {
	home := s.createHome("Cabin")
	s.fx.share(home, s.friend, models.ShareRoleWrite)

	roomName := "Bath"
	room, err := s.rooms.CreateRoom(s.ctx, home.ID, s.friend.ID, RoomInput{Name: &roomName})
	s.Require().NoError(err)
	itemName := "Water heater"
	item, err := s.items.CreateItem(s.ctx, room.ID, s.owner.ID, ItemInput{Name: &itemName})
	s.Require().NoError(err)
	_, err = s.tasks.CreateTask(s.ctx, s.owner.ID, s.mustInput(TaskFields{Title: "Flush tank", ItemID: &item.ID}))
	s.Require().NoError(err)
	_, err = s.finishes.CreatePaint(s.ctx, s.owner.ID, FinishLocation{RoomID: &room.ID}, models.Paint{Name: "Eggshell"})
	s.Require().NoError(err)

	s.ErrorIs(s.homes.DeleteHome(s.ctx, home.ID, s.friend.ID), ErrNotFoundOrForbidden)
	s.Require().NoError(s.homes.DeleteHome(s.ctx, home.ID, s.owner.ID))

	for _, model := range []any{&models.Home{}, &models.Room{}, &models.Item{}, &models.Task{}, &models.Paint{}, &models.Share{}} {
		var count int64
		s.Require().NoError(s.db.Model(model).Count(&count).Error)
		s.Zero(count)
	}
}

func (s *HomeServiceTestSuite) TestRoomsAndItems() {
	home := s.createHome("Cabin")
	s.fx.share(home, s.friend, models.ShareRoleRead)

	roomName := "Garage"
	_, err := s.rooms.CreateRoom(s.ctx, home.ID, s.friend.ID, RoomInput{Name: &roomName})
	s.ErrorIs(err, ErrNotFoundOrForbidden)

	room, err := s.rooms.CreateRoom(s.ctx, home.ID, s.owner.ID, RoomInput{Name: &roomName})
	s.Require().NoError(err)
	s.Equal(home.ID, room.HomeID)

	rooms, err := s.rooms.ListRooms(s.ctx, home.ID, s.friend.ID)
	s.Require().NoError(err)
	s.Len(rooms, 1)

	itemName := "Lawn mower"
	item, err := s.items.CreateItem(s.ctx, room.ID, s.owner.ID, ItemInput{Name: &itemName})
	s.Require().NoError(err)
	s.Equal(home.ID, item.HomeID)
	s.Equal(room.ID, item.RoomID)

	fetched, err := s.items.GetItem(s.ctx, item.ID, s.friend.ID)
	s.Require().NoError(err)
	s.Equal("Garage", fetched.Room.Name)

	manufacturer := "Honda"
	_, err = s.items.UpdateItem(s.ctx, item.ID, s.friend.ID, ItemInput{Manufacturer: &manufacturer})
	s.ErrorIs(err, ErrNotFoundOrForbidden)

	updated, err := s.items.UpdateItem(s.ctx, item.ID, s.owner.ID, ItemInput{Manufacturer: &manufacturer})
	s.Require().NoError(err)
	s.Equal("Honda", updated.Manufacturer)
	s.Equal("Lawn mower", updated.Name)

	fullRoom, err := s.rooms.GetRoom(s.ctx, room.ID, s.friend.ID)
	s.Require().NoError(err)
	s.Len(fullRoom.Items, 1)

	s.Require().NoError(s.rooms.DeleteRoom(s.ctx, room.ID, s.owner.ID))
	_, err = s.items.GetItem(s.ctx, item.ID, s.owner.ID)
	s.ErrorIs(err, ErrNotFoundOrForbidden)
}

func (s *HomeServiceTestSuite) TestFinishes() {
	home := s.createHome("Cabin")
	roomName := "Hall"
	room, err := s.rooms.CreateRoom(s.ctx, home.ID, s.owner.ID, RoomInput{Name: &roomName})
	s.Require().NoError(err)

	_, err = s.finishes.CreatePaint(s.ctx, s.owner.ID, FinishLocation{HomeID: &home.ID, RoomID: &room.ID}, models.Paint{Name: "White"})
	s.ErrorIs(err, ErrInvalidLocation)

	homePaint, err := s.finishes.CreatePaint(s.ctx, s.owner.ID, FinishLocation{HomeID: &home.ID}, models.Paint{Name: "Exterior", Brand: "Dulux"})
	s.Require().NoError(err)
	s.Nil(homePaint.RoomID)

	roomPaint, err := s.finishes.CreatePaint(s.ctx, s.owner.ID, FinishLocation{RoomID: &room.ID}, models.Paint{Name: "Hall blue"})
	s.Require().NoError(err)
	s.Equal(home.ID, roomPaint.HomeID)

	floor, err := s.finishes.CreateFlooring(s.ctx, s.owner.ID, FinishLocation{RoomID: &room.ID}, models.Flooring{Name: "Oak", Material: "wood"})
	s.Require().NoError(err)

	paints, err := s.finishes.ListPaints(s.ctx, s.owner.ID, FinishLocation{HomeID: &home.ID})
	s.Require().NoError(err)
	s.Len(paints, 2)

	paints, err = s.finishes.ListPaints(s.ctx, s.owner.ID, FinishLocation{RoomID: &room.ID})
	s.Require().NoError(err)
	s.Len(paints, 1)

	_, err = s.finishes.ListFloorings(s.ctx, s.friend.ID, FinishLocation{HomeID: &home.ID})
	s.ErrorIs(err, ErrNotFoundOrForbidden)

	s.ErrorIs(s.finishes.DeleteFlooring(s.ctx, floor.ID, s.friend.ID), ErrNotFoundOrForbidden)
	s.Require().NoError(s.finishes.DeleteFlooring(s.ctx, floor.ID, s.owner.ID))
	s.Require().NoError(s.finishes.DeletePaint(s.ctx, roomPaint.ID, s.owner.ID))
}

func (s *HomeServiceTestSuite) mustInput(f TaskFields) CreateTaskInput {
	in, err := NewCreateTaskInput(f)
	s.Require().NoError(err)
	return in
}

func TestHomeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HomeServiceTestSuite))
}
