package dto

// ---------------- Requests ----------------

type RegisterRequest struct {
	LoginID  string `json:"login_id" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,userrole"`
}

type LoginRequest struct {
	LoginID  string `json:"login_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ---------------- Responses ----------------

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type AuthResponse struct {
	User   *UserResponse      `json:"user"`
	Tokens *TokenPairResponse `json:"tokens"`
}

type UserResponse struct {
	ID        string `json:"id"`
	LoginID   string `json:"login_id"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	Onboarded bool   `json:"onboarded"`
}
