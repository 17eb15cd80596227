package dto

import "time"

// ---------------- Responses ----------------

type DocumentResponse struct {
	ID          string    `json:"id"`
	RequestID   string    `json:"request_id,omitempty"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	URL         string    `json:"url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
