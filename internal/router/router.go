package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/lifeboard/backend/api/handler"
)

type Handlers struct {
	Task        *apiHandler.TaskHandler
	Activity    *apiHandler.ActivityHandler
	Community   *apiHandler.CommunityHandler
	Messaging   *apiHandler.MessagingHandler
	Profile     *apiHandler.ProfileHandler
	Preferences *apiHandler.PreferencesHandler
	Analytics   *apiHandler.AnalyticsHandler
	Export      *apiHandler.ExportHandler
	Health      *apiHandler.HealthHandler
}

func New(handlers Handlers) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Tasks
	r.GET("/api/v1/tasks", handlers.Task.GetTasks)
	r.POST("/api/v1/tasks", handlers.Task.CreateTask)
	r.DELETE("/api/v1/tasks", handlers.Task.ClearTasks)
	r.GET("/api/v1/tasks/stats", handlers.Task.GetStats)
	r.GET("/api/v1/tasks/selection", handlers.Task.GetSelection)
	r.PUT("/api/v1/tasks/selection", handlers.Task.SetSelection)
	r.GET("/api/v1/tasks/{id}", handlers.Task.GetTask)
	r.PUT("/api/v1/tasks/{id}", handlers.Task.UpdateTask)
	r.DELETE("/api/v1/tasks/{id}", handlers.Task.DeleteTask)
	r.POST("/api/v1/tasks/{id}/toggle", handlers.Task.ToggleTask)

	// Activities
	r.GET("/api/v1/activities", handlers.Activity.GetActivities)
	r.POST("/api/v1/activities", handlers.Activity.CreateActivity)
	r.DELETE("/api/v1/activities", handlers.Activity.ClearActivities)
	r.GET("/api/v1/activities/recent", handlers.Activity.GetRecent)
	r.GET("/api/v1/activities/stats", handlers.Activity.GetStats)
	r.GET("/api/v1/activities/selection", handlers.Activity.GetSelection)
	r.PUT("/api/v1/activities/selection", handlers.Activity.SetSelection)
	r.GET("/api/v1/activities/{id}", handlers.Activity.GetActivity)
	r.PUT("/api/v1/activities/{id}", handlers.Activity.UpdateActivity)
	r.DELETE("/api/v1/activities/{id}", handlers.Activity.DeleteActivity)

	// Community
	r.GET("/api/v1/posts", handlers.Community.GetPosts)
	r.POST("/api/v1/posts", handlers.Community.CreatePost)
	r.DELETE("/api/v1/posts", handlers.Community.ClearPosts)
	r.GET("/api/v1/posts/stats", handlers.Community.GetStats)
	r.GET("/api/v1/posts/selection", handlers.Community.GetSelection)
	r.PUT("/api/v1/posts/selection", handlers.Community.SetSelection)
	r.GET("/api/v1/posts/{id}", handlers.Community.GetPost)
	r.PUT("/api/v1/posts/{id}", handlers.Community.UpdatePost)
	r.DELETE("/api/v1/posts/{id}", handlers.Community.DeletePost)
	r.POST("/api/v1/posts/{id}/like", handlers.Community.LikePost)

	// Messaging
	r.GET("/api/v1/conversations", handlers.Messaging.GetConversations)
	r.POST("/api/v1/conversations", handlers.Messaging.StartConversation)
	r.DELETE("/api/v1/conversations", handlers.Messaging.ClearConversations)
	r.GET("/api/v1/conversations/active", handlers.Messaging.GetActive)
	r.DELETE("/api/v1/conversations/active", handlers.Messaging.Deactivate)
	r.GET("/api/v1/conversations/unread", handlers.Messaging.GetUnread)
	r.GET("/api/v1/conversations/{id}", handlers.Messaging.GetConversation)
	r.DELETE("/api/v1/conversations/{id}", handlers.Messaging.DeleteConversation)
	r.POST("/api/v1/conversations/{id}/messages", handlers.Messaging.SendMessage)
	r.POST("/api/v1/conversations/{id}/inbound", handlers.Messaging.ReceiveMessage)
	r.POST("/api/v1/conversations/{id}/read", handlers.Messaging.MarkAsRead)
	r.POST("/api/v1/conversations/{id}/activate", handlers.Messaging.Activate)

	// Profile and preferences
	r.GET("/api/v1/profile", handlers.Profile.GetProfile)
	r.PUT("/api/v1/profile", handlers.Profile.UpdateProfile)
	r.POST("/api/v1/profile/reset", handlers.Profile.ResetProfile)
	r.GET("/api/v1/preferences", handlers.Preferences.GetPreferences)
	r.PUT("/api/v1/preferences", handlers.Preferences.UpdatePreferences)
	r.POST("/api/v1/preferences/reset", handlers.Preferences.ResetPreferences)

	// Analytics
	r.GET("/api/v1/analytics/summary", handlers.Analytics.GetSummary)
	r.GET("/api/v1/analytics/weekly", handlers.Analytics.GetWeekly)
	r.GET("/api/v1/analytics/categories", handlers.Analytics.GetCategories)
	r.GET("/api/v1/analytics/timeline", handlers.Analytics.GetTimeline)
	r.GET("/api/v1/analytics/priorities", handlers.Analytics.GetPriorities)
	r.GET("/api/v1/analytics/recent", handlers.Analytics.GetRecent)

	// Data export and import
	r.GET("/api/v1/export", handlers.Export.Export)
	r.POST("/api/v1/import", handlers.Export.Import)

	return r
}
