package constants

const (
	// ContextKeyUserID is the session and gin context key holding the authenticated user id.
	ContextKeyUserID = "user_id"

	SessionCookieName = "home_session"

	MinPasswordLength = 8

	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	RecentTasksLimit = 5

	MaxSuggestedTasks = 10
)
