package dto

import "github.com/judoclub/clubsite/internal/utils"

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorsResponse carries every validation violation of a write.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// PageResponse is the envelope of paginated listings.
type PageResponse struct {
	Data       interface{}    `json:"data"`
	Pagination utils.PageMeta `json:"pagination"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// UserMessageResponse pairs a confirmation message with the affected account.
type UserMessageResponse struct {
	Message string      `json:"message"`
	User    interface{} `json:"user"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
