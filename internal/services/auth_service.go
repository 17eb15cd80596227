package services

import (
	"errors"
	"time"

	"k9hope_backend/internal/auth"
	"k9hope_backend/internal/models"
	"k9hope_backend/internal/repositories"
	"k9hope_backend/internal/services/dto"
	"k9hope_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(req *dto.RefreshRequest) (*dto.TokenPairResponse, error)
	Logout(req *dto.LogoutRequest) error
}

type authService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	tokens      *auth.TokenManager
	accessTTL   time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	tokens *auth.TokenManager,
	accessTTL time.Duration,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		tokens:      tokens,
		accessTTL:   accessTTL,
	}
}

// Register creates the account plus an empty profile for the chosen
// role. Admin accounts are seeded at startup, never self-registered.
func (s *authService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := models.UserRole(req.Role)
	if role == models.UserRoleAdmin {
		return nil, apperrors.NewForbiddenError("Admin accounts cannot be self-registered")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		LoginID:      req.LoginID,
		PasswordHash: hash,
		Role:         role,
		Status:       models.UserStatusActive,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		if errors.Is(err, repositories.ErrLoginIDTaken) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.createEmptyProfile(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: buildUserResponse(user), Tokens: tokens}, nil
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindUserByLoginID(req.LoginID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid login or password", 401)
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid login or password", 401)
	}
	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.NewForbiddenError("Account is suspended")
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{User: buildUserResponse(user), Tokens: tokens}, nil
}

// Refresh rotates the refresh token: the old one is revoked and a new
// pair is issued.
func (s *authService) Refresh(req *dto.RefreshRequest) (*dto.TokenPairResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}
	if stored.ExpiresAt.Before(time.Now()) {
		_ = s.userRepo.RevokeRefreshToken(stored.Token)
		return nil, apperrors.New(apperrors.CodeTokenExpired, "auth", "Refresh token expired", 401)
	}

	user, err := s.userRepo.FindUserByID(stored.UserID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}

	if err := s.userRepo.RevokeRefreshToken(stored.Token); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.issueTokens(user)
}

func (s *authService) Logout(req *dto.LogoutRequest) error {
	err := s.userRepo.RevokeRefreshToken(req.RefreshToken)
	if err != nil && !errors.Is(err, repositories.ErrRefreshTokenNotFound) {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) issueTokens(user *models.User) (*dto.TokenPairResponse, error) {
	accessToken, err := s.tokens.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, expiresAt, err := s.tokens.GenerateRefreshToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.userRepo.StoreRefreshToken(&models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: expiresAt,
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

func (s *authService) createEmptyProfile(user *models.User) error {
	switch user.Role {
	case models.UserRoleDonor:
		return s.profileRepo.CreateDonorProfile(&models.DonorProfile{UserID: user.ID})
	case models.UserRolePatient:
		return s.profileRepo.CreatePatientProfile(&models.PatientProfile{UserID: user.ID})
	case models.UserRoleVeterinary:
		return s.profileRepo.CreateClinicProfile(&models.ClinicProfile{UserID: user.ID})
	case models.UserRoleOrganisation:
		return s.profileRepo.CreateOrganisationProfile(&models.OrganisationProfile{UserID: user.ID})
	}
	return nil
}

func buildUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        user.ID,
		LoginID:   user.LoginID,
		Role:      string(user.Role),
		Status:    string(user.Status),
		Onboarded: user.Onboarded,
	}
}
