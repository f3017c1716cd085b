package transport

import (
	"github.com/go-playground/validator/v10"

	"github.com/lifeboard/backend/domain"
)

var validate = validator.New()

// Validate runs struct tag validation on a request payload.
func Validate(req interface{}) error {
	return validate.Struct(req)
}

type TaskCreateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Priority    string   `json:"priority" validate:"omitempty,oneof=high medium low"`
	DueDate     string   `json:"due_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Tags        []string `json:"tags"`
}

type TaskUpdateRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Priority    *string  `json:"priority" validate:"omitempty,oneof=high medium low"`
	// An empty string clears the due date, a timestamp replaces it.
	DueDate *string  `json:"due_date"`
	Tags    []string `json:"tags"`
}

type TaskSelectionRequest struct {
	Filter string `json:"filter" validate:"oneof=all active completed"`
	SortBy string `json:"sort_by" validate:"oneof=created_at due_date priority"`
}

type ActivityCreateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"omitempty,oneof=work study fitness trading personal"`
	Date        string   `json:"date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Duration    int      `json:"duration" validate:"gte=0"`
	Tags        []string `json:"tags"`
}

type ActivityUpdateRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Category    *string  `json:"category" validate:"omitempty,oneof=work study fitness trading personal"`
	Date        *string  `json:"date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Duration    *int     `json:"duration" validate:"omitempty,gte=0"`
	Tags        []string `json:"tags"`
}

type ActivitySelectionRequest struct {
	Filter string `json:"filter" validate:"oneof=all work study fitness trading personal"`
	SortBy string `json:"sort_by" validate:"oneof=date category duration"`
}

type PostCreateRequest struct {
	Title string   `json:"title" validate:"required"`
	Body  string   `json:"body" validate:"required"`
	Tags  []string `json:"tags"`
}

type PostUpdateRequest struct {
	Title *string  `json:"title" validate:"omitempty,min=1"`
	Body  *string  `json:"body" validate:"omitempty,min=1"`
	Tags  []string `json:"tags"`
}

type PostSelectionRequest struct {
	Filter    string `json:"filter" validate:"oneof=all my-posts popular"`
	TagFilter string `json:"tag_filter"`
	SortBy    string `json:"sort_by" validate:"oneof=newest oldest popular"`
}

type ConversationStartRequest struct {
	Name   string `json:"name" validate:"required"`
	Avatar string `json:"avatar" validate:"omitempty,url"`
	Status string `json:"status" validate:"omitempty,oneof=online offline"`
}

type MessageRequest struct {
	Text string `json:"text" validate:"required"`
}

type ProfileUpdateRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Bio      *string `json:"bio" validate:"omitempty,max=160"`
	Location *string `json:"location"`
	Avatar   *string `json:"avatar" validate:"omitempty,url"`
	Role     *string `json:"role"`
}

// PreferencesUpdateRequest replaces whole preference groups. Groups left nil
// keep their current values; group-level validation lives in the usecase.
type PreferencesUpdateRequest struct {
	Notifications *domain.NotificationPrefs `json:"notifications"`
	Appearance    *domain.AppearancePrefs   `json:"appearance"`
	Privacy       *domain.PrivacyPrefs      `json:"privacy"`
	Data          *domain.DataPrefs         `json:"data"`
}
