package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"k9hope_backend/internal/models"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrLoginIDTaken         = errors.New("login id already taken")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)

type UserRepository interface {
	CreateUser(user *models.User) error
	FindUserByID(id string) (*models.User, error)
	FindUserByLoginID(loginID string) (*models.User, error)
	UpdateUser(user *models.User) error
	SetOnboarded(userID string) error
	CountByRole(role models.UserRole) (int64, error)

	// Refresh token operations
	StoreRefreshToken(token *models.RefreshToken) error
	FindRefreshToken(token string) (*models.RefreshToken, error)
	RevokeRefreshToken(token string) error
	RevokeUserRefreshTokens(userID string) error
	DeleteExpiredRefreshTokens() error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) CreateUser(user *models.User) error {
	var count int64
	if err := r.db.Model(&models.User{}).Where("login_id = ?", user.LoginID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrLoginIDTaken
	}
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) FindUserByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindUserByLoginID(loginID string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "login_id = ?", loginID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepositoryImpl) SetOnboarded(userID string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", userID).Update("onboarded", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) CountByRole(role models.UserRole) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

// Refresh token operations

func (r *UserRepositoryImpl) StoreRefreshToken(token *models.RefreshToken) error {
	return r.db.Create(token).Error
}

func (r *UserRepositoryImpl) FindRefreshToken(token string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	err := r.db.First(&rt, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return &rt, nil
}

func (r *UserRepositoryImpl) RevokeRefreshToken(token string) error {
	result := r.db.Where("token = ?", token).Delete(&models.RefreshToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRefreshTokenNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) RevokeUserRefreshTokens(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error
}

func (r *UserRepositoryImpl) DeleteExpiredRefreshTokens() error {
	return r.db.Where("expires_at < ?", time.Now()).Delete(&models.RefreshToken{}).Error
}
