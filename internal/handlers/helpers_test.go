package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yukikurage/home-inventory-api/internal/access"
	"github.com/yukikurage/home-inventory-api/internal/constants"
	"github.com/yukikurage/home-inventory-api/internal/database"
	"github.com/yukikurage/home-inventory-api/internal/models"
	"github.com/yukikurage/home-inventory-api/internal/repository"
	"github.com/yukikurage/home-inventory-api/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	db       *gorm.DB
	auth     *services.AuthService
	handlers Handlers
}

func setupTestEnv(t *testing.T, suggester services.TaskSuggester) testEnv {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})
	require.NoError(t, database.Migrate(db))

	txService := services.NewTransactionService(db, 5*time.Second)
	resolver := access.NewResolver(db)
	userRepo := repository.NewUserRepository(db)
	homeRepo := repository.NewHomeRepository(db)
	authService := services.NewAuthService(userRepo)

	return testEnv{
		db:   db,
		auth: authService,
		handlers: Handlers{
			Auth: NewAuthHandler(authService),
			Home: NewHomeHandler(services.NewHomeService(txService, resolver, homeRepo, userRepo)),
			Room: NewRoomHandler(
				services.NewRoomService(txService, resolver, repository.NewRoomRepository(db)),
				services.NewItemService(txService, resolver, repository.NewItemRepository(db)),
			),
			Task: NewTaskHandler(
				services.NewTaskService(txService, resolver, repository.NewTaskRepository(db)),
				services.NewSuggestionService(resolver, suggester),
			),
			Finish: NewFinishHandler(services.NewFinishService(txService, resolver, repository.NewFinishRepository(db))),
			Import: NewImportHandler(services.NewImportService(txService, repository.NewImportRepository(db), homeRepo)),
		},
	}
}

func (e testEnv) createUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Name: email, PasswordHash: "hashedpassword"}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

func (e testEnv) createHome(t *testing.T, owner *models.User, name string) *models.Home {
	t.Helper()
	home := &models.Home{Name: name, UserID: owner.ID}
	require.NoError(t, e.db.Omit("Owner").Create(home).Error)
	return home
}

func (e testEnv) createShare(t *testing.T, home *models.Home, user *models.User, role models.ShareRole) {
	t.Helper()
	share := &models.Share{HomeID: home.ID, UserID: user.ID, Role: role}
	require.NoError(t, e.db.Omit("Home", "User").Create(share).Error)
}

func (e testEnv) createRoom(t *testing.T, home *models.Home, name string) *models.Room {
	t.Helper()
	room := &models.Room{Name: name, HomeID: home.ID}
	require.NoError(t, e.db.Omit("Home").Create(room).Error)
	return room
}

func (e testEnv) createItem(t *testing.T, room *models.Room, name string) *models.Item {
	t.Helper()
	item := &models.Item{Name: name, RoomID: room.ID, HomeID: room.HomeID}
	require.NoError(t, e.db.Omit("Room").Create(item).Error)
	return item
}

// createAuthContext builds a context as if RequireAuth had run. params are
// key/value pairs for path parameters.
func createAuthContext(method, url string, body []byte, userID string, params ...string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if userID != "" {
		c.Set(constants.ContextKeyUserID, userID)
	}
	for i := 0; i+1 < len(params); i += 2 {
		c.Params = append(c.Params, gin.Param{Key: params[i], Value: params[i+1]})
	}

	return c, w
}
