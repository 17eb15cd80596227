package dto

// ---------------- Requests ----------------

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// ---------------- Responses ----------------

type ChatResponse struct {
	Reply string `json:"reply"`
}
