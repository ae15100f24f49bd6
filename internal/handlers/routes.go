package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/home-inventory-api/internal/middleware"
)

// Handlers groups every HTTP handler the API exposes.
type Handlers struct {
	Auth   *AuthHandler
	Home   *HomeHandler
	Room   *RoomHandler
	Task   *TaskHandler
	Finish *FinishHandler
	Import *ImportHandler
}

// RegisterRoutes mounts the API on r. Session middleware must already be
// installed.
func RegisterRoutes(r *gin.Engine, h Handlers) {
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Home Inventory API is running",
		})
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.Auth.Signup)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/me", middleware.RequireAuth(), h.Auth.GetCurrentUser)
		}

		protected := api.Group("")
		protected.Use(middleware.RequireAuth())

		protected.GET("/users", h.Home.ListMembers)

		homes := protected.Group("/homes")
		{
			homes.GET("", h.Home.ListHomes)
			homes.POST("", h.Home.CreateHome)
			homes.GET("/:id", h.Home.GetHome)
			homes.PATCH("/:id", h.Home.UpdateHome)
			homes.DELETE("/:id", h.Home.DeleteHome)
			homes.GET("/:id/shares", h.Home.ListShares)
			homes.POST("/:id/shares", h.Home.ShareHome)
			homes.DELETE("/:id/shares/:user_id", h.Home.RemoveShare)
			homes.GET("/:id/rooms", h.Room.ListRooms)
			homes.POST("/:id/rooms", h.Room.CreateRoom)
			homes.GET("/:id/tasks", h.Task.ListHomeTasks)
		}

		rooms := protected.Group("/rooms")
		{
			rooms.GET("/:id", h.Room.GetRoom)
			rooms.PATCH("/:id", h.Room.UpdateRoom)
			rooms.DELETE("/:id", h.Room.DeleteRoom)
			rooms.GET("/:id/items", h.Room.ListItems)
			rooms.POST("/:id/items", h.Room.CreateItem)
			rooms.GET("/:id/tasks", h.Task.ListRoomTasks)
		}

		items := protected.Group("/items")
		{
			items.GET("/:id", h.Room.GetItem)
			items.PATCH("/:id", h.Room.UpdateItem)
			items.DELETE("/:id", h.Room.DeleteItem)
			items.GET("/:id/tasks", h.Task.ListItemTasks)
			items.POST("/:id/tasks/suggest", h.Task.SuggestTasks)
		}

		tasks := protected.Group("/tasks")
		{
			tasks.GET("", h.Task.ListTasks)
			tasks.POST("", h.Task.CreateTask)
			tasks.GET("/recent", h.Task.RecentTasks)
			tasks.GET("/:id", h.Task.GetTask)
			tasks.PATCH("/:id", h.Task.UpdateTask)
			tasks.DELETE("/:id", h.Task.DeleteTask)
			tasks.POST("/:id/complete", h.Task.CompleteTask)
			tasks.GET("/:id/history", h.Task.TaskHistory)
		}

		paints := protected.Group("/paints")
		{
			paints.GET("", h.Finish.ListPaints)
			paints.POST("", h.Finish.CreatePaint)
			paints.DELETE("/:id", h.Finish.DeletePaint)
		}

		floorings := protected.Group("/floorings")
		{
			floorings.GET("", h.Finish.ListFloorings)
			floorings.POST("", h.Finish.CreateFlooring)
			floorings.DELETE("/:id", h.Finish.DeleteFlooring)
		}

		protected.POST("/import", h.Import.Import)
		protected.GET("/export", h.Import.Export)
	}
}
