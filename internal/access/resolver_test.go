package access

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yukikurage/home-inventory-api/internal/database"
	"github.com/yukikurage/home-inventory-api/internal/models"
)

type ResolverTestSuite struct {
	suite.Suite
	db       *gorm.DB
	resolver *Resolver
	ctx      context.Context

	owner    models.User
	writer   models.User
	reader   models.User
	assignee models.User
	stranger models.User

	home models.Home
	room models.Room
	item models.Item

	homeTask     models.Task
	itemTask     models.Task
	assignedTask models.Task
	readerTask   models.Task
}

func (s *ResolverTestSuite) SetupTest() {
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.T().Cleanup(func() { _ = sqlDB.Close() })
	s.Require().NoError(database.Migrate(db))

	s.db = db
	s.resolver = NewResolver(db)
	s.ctx = context.Background()

	for _, u := range []*models.User{&s.owner, &s.writer, &s.reader, &s.assignee, &s.stranger} {
		u.Email = uuid.NewString() + "@example.com"
		u.PasswordHash = "hashed"
		s.Require().NoError(db.Create(u).Error)
	}

	s.home = models.Home{Name: "Cabin", UserID: s.owner.ID}
	s.Require().NoError(db.Omit("Owner").Create(&s.home).Error)
	s.Require().NoError(db.Omit("Home", "User").Create(&models.Share{HomeID: s.home.ID, UserID: s.writer.ID, Role: models.ShareRoleWrite}).Error)
	s.Require().NoError(db.Omit("Home", "User").Create(&models.Share{HomeID: s.home.ID, UserID: s.reader.ID, Role: models.ShareRoleRead}).Error)

	s.room = models.Room{Name: "Loft", HomeID: s.home.ID}
	s.Require().NoError(db.Omit("Home").Create(&s.room).Error)
	s.item = models.Item{Name: "Stove", RoomID: s.room.ID, HomeID: s.home.ID}
	s.Require().NoError(db.Omit("Room").Create(&s.item).Error)

	s.homeTask = models.Task{Title: "Sweep chimney", CreatorID: s.owner.ID, HomeID: &s.home.ID}
	s.itemTask = models.Task{Title: "Clean glass", CreatorID: s.writer.ID, HomeID: &s.home.ID, RoomID: &s.room.ID, ItemID: &s.item.ID}
	s.assignedTask = models.Task{Title: "Stack wood", CreatorID: s.owner.ID, AssigneeID: &s.assignee.ID, HomeID: &s.home.ID, RoomID: &s.room.ID}
	s.readerTask = models.Task{Title: "Check smoke alarm", CreatorID: s.reader.ID, HomeID: &s.home.ID}
	for _, task := range []*models.Task{&s.homeTask, &s.itemTask, &s.assignedTask, &s.readerTask} {
		s.Require().NoError(db.Omit("Creator", "Assignee", "Home", "Room", "Item").Create(task).Error)
	}
}

func (s *ResolverTestSuite) TestHomeLevels() {
	cases := []struct {
		name  string
		user  string
		level Level
		ok    bool
	}{
		{"owner read", s.owner.ID, Read, true},
		{"owner write", s.owner.ID, Write, true},
		{"owner owner", s.owner.ID, Owner, true},
		{"writer write", s.writer.ID, Write, true},
		{"writer owner", s.writer.ID, Owner, false},
		{"reader read", s.reader.ID, Read, true},
		{"reader write", s.reader.ID, Write, false},
		{"stranger read", s.stranger.ID, Read, false},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			err := s.resolver.Authorize(s.ctx, tc.user, Ref{Kind: KindHome, ID: s.home.ID}, tc.level)
			if tc.ok {
				s.NoError(err)
			} else {
				s.ErrorIs(err, ErrNotFoundOrForbidden)
			}
		})
	}
}

func (s *ResolverTestSuite) TestRoomAndItemInheritFromHome() {
	for _, ref := range []Ref{{Kind: KindRoom, ID: s.room.ID}, {Kind: KindItem, ID: s.item.ID}} {
		s.NoError(s.resolver.Authorize(s.ctx, s.reader.ID, ref, Read))
		s.ErrorIs(s.resolver.Authorize(s.ctx, s.reader.ID, ref, Write), ErrNotFoundOrForbidden)
		s.NoError(s.resolver.Authorize(s.ctx, s.writer.ID, ref, Write))
		s.ErrorIs(s.resolver.Authorize(s.ctx, s.stranger.ID, ref, Read), ErrNotFoundOrForbidden)
	}

	item, err := s.resolver.Item(s.ctx, s.writer.ID, s.item.ID, Write)
	s.Require().NoError(err)
	s.Equal("Stove", item.Name)
	s.Equal(s.item.ID, item.ID)
}

func (s *ResolverTestSuite) TestMissingEntityLooksForbidden() {
	for _, kind := range []Kind{KindHome, KindRoom, KindItem, KindTask} {
		err := s.resolver.Authorize(s.ctx, s.owner.ID, Ref{Kind: kind, ID: uuid.NewString()}, Read)
		s.ErrorIs(err, ErrNotFoundOrForbidden, string(kind))
	}
}

func (s *ResolverTestSuite) TestTaskWrite() {
	// Creator always writes their own task, even with only a READ share.
	s.NoError(s.resolver.Authorize(s.ctx, s.reader.ID, Ref{Kind: KindTask, ID: s.readerTask.ID}, Write))
	// WRITE on the location is enough for tasks created by others.
	s.NoError(s.resolver.Authorize(s.ctx, s.writer.ID, Ref{Kind: KindTask, ID: s.homeTask.ID}, Write))
	s.NoError(s.resolver.Authorize(s.ctx, s.owner.ID, Ref{Kind: KindTask, ID: s.itemTask.ID}, Write))
	s.ErrorIs(s.resolver.Authorize(s.ctx, s.reader.ID, Ref{Kind: KindTask, ID: s.homeTask.ID}, Write), ErrNotFoundOrForbidden)
	// Assignment alone does not grant write.
	s.ErrorIs(s.resolver.Authorize(s.ctx, s.assignee.ID, Ref{Kind: KindTask, ID: s.assignedTask.ID}, Write), ErrNotFoundOrForbidden)
}

func (s *ResolverTestSuite) TestTaskReadAndFulfil() {
	ref := Ref{Kind: KindTask, ID: s.assignedTask.ID}
	s.NoError(s.resolver.Authorize(s.ctx, s.assignee.ID, ref, Read))
	s.NoError(s.resolver.Authorize(s.ctx, s.assignee.ID, ref, Fulfil))
	s.NoError(s.resolver.Authorize(s.ctx, s.reader.ID, ref, Read))
	s.ErrorIs(s.resolver.Authorize(s.ctx, s.reader.ID, ref, Fulfil), ErrNotFoundOrForbidden)
	s.ErrorIs(s.resolver.Authorize(s.ctx, s.stranger.ID, ref, Read), ErrNotFoundOrForbidden)
}

func (s *ResolverTestSuite) TestLocationReturnsAncestors() {
	path, err := s.resolver.Location(s.ctx, s.writer.ID, models.Location{Kind: models.LocationItem, ID: s.item.ID}, Write)
	s.Require().NoError(err)
	s.Equal(Path{HomeID: s.home.ID, RoomID: s.room.ID, ItemID: s.item.ID}, path)

	path, err = s.resolver.Location(s.ctx, s.reader.ID, models.Location{Kind: models.LocationRoom, ID: s.room.ID}, Read)
	s.Require().NoError(err)
	s.Equal(Path{HomeID: s.home.ID, RoomID: s.room.ID}, path)

	path, err = s.resolver.Location(s.ctx, s.owner.ID, models.Location{Kind: models.LocationHome, ID: s.home.ID}, Owner)
	s.Require().NoError(err)
	s.Equal(Path{HomeID: s.home.ID}, path)

	_, err = s.resolver.Location(s.ctx, s.reader.ID, models.Location{Kind: models.LocationRoom, ID: s.room.ID}, Write)
	s.ErrorIs(err, ErrNotFoundOrForbidden)
}

func (s *ResolverTestSuite) TestTasksScopeListsVisibleTasks() {
	var visible []models.Task
	err := s.db.Model(&models.Task{}).Scopes(Tasks(s.assignee.ID, Read)).Find(&visible).Error
	s.Require().NoError(err)
	s.Require().Len(visible, 1)
	s.Equal(s.assignedTask.ID, visible[0].ID)

	var count int64
	s.Require().NoError(s.db.Model(&models.Task{}).Scopes(Tasks(s.reader.ID, Read)).Count(&count).Error)
	s.Equal(int64(4), count)
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "read", Read.String())
	assert.Equal(t, "fulfil", Fulfil.String())
	require.Nil(t, Owner.roles())
}
