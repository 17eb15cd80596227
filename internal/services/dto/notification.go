package dto

import "time"

// ---------------- Requests ----------------

type NotificationCriteria struct {
	UnreadOnly bool   `form:"unread_only"`
	Type       string `form:"type" validate:"omitempty,oneof=match appointment system"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

// ---------------- Responses ----------------

type NotificationResponse struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	Title      string                 `json:"title"`
	Message    string                 `json:"message"`
	ActionLink string                 `json:"action_link,omitempty"`
	Data       map[string]interface{} `json:"data,omitempty"`
	IsRead     bool                   `json:"is_read"`
	ReadAt     *time.Time             `json:"read_at,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	UnreadCount   int64                   `json:"unread_count"`
	Total         int64                   `json:"total"`
	Page          int                     `json:"page"`
	PageSize      int                     `json:"page_size"`
	TotalPages    int                     `json:"total_pages"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
