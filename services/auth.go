package services

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"food-delivery-api/models"
)

// AuthService registers users and validates login credentials.
type AuthService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAuthService(db *gorm.DB, log *zap.Logger) *AuthService {
	return &AuthService{db: db, log: log}
}

// Register creates a user with a bcrypt hash of the password. The plaintext
// password is never stored or logged.
func (s *AuthService) Register(username, email, password string, role models.UserRole) (*models.User, error) {
	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Error("registration lookup failed", zap.Error(err))
		return nil, ErrRegistrationFailed
	}

	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("password hashing failed", zap.Error(err))
		return nil, ErrRegistrationFailed
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		s.log.Error("user insert failed", zap.Error(err))
		return nil, ErrRegistrationFailed
	}

	return &user, nil
}

// ValidateCredentials returns the matching user, or nil when the email is
// unknown or the password does not verify. A failed login is an expected
// outcome, not an error.
func (s *AuthService) ValidateCredentials(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}

	return &user, nil
}
