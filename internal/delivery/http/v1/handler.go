package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"smarttask/internal/services"
)

type Handler interface {
	HandleRegister(c *gin.Context)
	HandleLogin(c *gin.Context)
	HandleAuthMiddleware(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleCompleteTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
	HandleGetAssignableUsers(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	auth   services.AuthService
	tasks  services.TaskService
}

func New(
	logger zerolog.Logger,
	authService services.AuthService,
	taskService services.TaskService,
) Handler {
	return &handlerImpl{
		logger: logger,
		auth:   authService,
		tasks:  taskService,
	}
}

func RegisterRoutes(router *gin.Engine, h Handler, corsOrigin string) {
	router.Use(CORSMiddleware(corsOrigin))

	router.POST("/register", h.HandleRegister)
	router.POST("/login", h.HandleLogin)

	tasksRouter := router.Group("/tasks", h.HandleAuthMiddleware)
	tasksRouter.GET("", h.HandleGetTasks)
	tasksRouter.POST("", h.HandleCreateTask)
	tasksRouter.PUT("/:id", h.HandleUpdateTask)
	tasksRouter.PUT("/:id/complete", h.HandleCompleteTask)
	tasksRouter.DELETE("/:id", h.HandleDeleteTask)

	router.GET("/users/assignable", h.HandleAuthMiddleware, h.HandleGetAssignableUsers)
}
