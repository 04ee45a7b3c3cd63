package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tarefasapp/tarefas/internal/auth"
	"github.com/tarefasapp/tarefas/internal/services"
)

type Handler interface {
	HandleHealth(c *gin.Context)
	HandleLogin(c *gin.Context)
	HandleAuthMiddleware(c *gin.Context)

	HandleGetTasks(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleCompleteTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)

	HandleGetActivities(c *gin.Context)
	HandleGetTaskActivities(c *gin.Context)
	HandleCreateActivity(c *gin.Context)

	HandleCreateNote(c *gin.Context)
	HandleGetTaskNotes(c *gin.Context)
}

type TokenValidator interface {
	Validate(token string) (*auth.Identity, error)
}

type handlerImpl struct {
	logger     zerolog.Logger
	tokens     TokenValidator
	auth       services.AuthService
	tasks      services.TaskService
	activities services.ActivityService
	notes      services.NoteService
}

func New(
	logger zerolog.Logger,
	tokens TokenValidator,
	authService services.AuthService,
	taskService services.TaskService,
	activityService services.ActivityService,
	noteService services.NoteService,
) Handler {
	return &handlerImpl{
		logger:     logger.With().Str("component", "http_v1").Logger(),
		tokens:     tokens,
		auth:       authService,
		tasks:      taskService,
		activities: activityService,
		notes:      noteService,
	}
}

// RegisterRoutes mounts the liveness probe, login and the protected
// entity routes on router.
func RegisterRoutes(router gin.IRouter, h Handler) {
	router.GET("/", h.HandleHealth)

	api := router.Group("/api")
	api.POST("/login", h.HandleLogin)

	protected := api.Group("", h.HandleAuthMiddleware)

	protected.GET("/tasks", h.HandleGetTasks)
	protected.POST("/tasks", h.HandleCreateTask)
	protected.PUT("/tasks/:id", h.HandleUpdateTask)
	protected.PATCH("/tasks/:id/complete", h.HandleCompleteTask)
	protected.DELETE("/tasks/:id", h.HandleDeleteTask)

	protected.GET("/activities", h.HandleGetActivities)
	protected.GET("/activities/:taskId", h.HandleGetTaskActivities)
	protected.POST("/activities", h.HandleCreateActivity)

	protected.POST("/notes", h.HandleCreateNote)
	protected.GET("/notes/:taskId", h.HandleGetTaskNotes)
}
