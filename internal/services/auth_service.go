package services

import (
	"strings"

	"hustled_backend/internal/auth"
	"hustled_backend/internal/logger"
	"hustled_backend/internal/models"
	"hustled_backend/internal/repositories"
	"hustled_backend/internal/services/dto"
	"hustled_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.SignupRequest, role models.UserRole) (*models.User, error)
	AuthenticateCandidate(db *gorm.DB, username, password string) (*models.User, error)
	AuthenticateAdmin(db *gorm.DB, username, password string) (*models.User, error)
	LoginCandidate(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	LoginAdmin(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	FindByUsername(db *gorm.DB, username string) (*models.User, error)
	FindByID(db *gorm.DB, id uint) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a new user with a hashed password. An empty role
// defaults to USER. A duplicate username is reported by the store's
// unique constraint and surfaces as a conflict error.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.SignupRequest, role models.UserRole) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, apperrors.NewValidationError("Username is required")
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, apperrors.NewValidationError("Password is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, apperrors.NewValidationError("Email is required")
	}

	if role == "" {
		role = models.UserRoleUser
	}
	if !models.ValidRole(role) {
		return nil, apperrors.NewValidationError("Invalid role: " + string(role))
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hashedPassword,
		Email:        strings.TrimSpace(req.Email),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         role,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.NewConflictError("Username already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	// Audit record of the new identity.
	logger.Info("new user registered",
		"id", user.ID,
		"username", user.Username,
		"email", user.Email,
		"phone", user.Phone,
		"role", user.Role,
	)

	return user, nil
}

// AuthenticateCandidate verifies credentials for the candidate login
// path. USER (the legacy default) counts as a candidate; any other
// role fails even with a correct password.
func (s *AuthServiceImpl) AuthenticateCandidate(db *gorm.DB, username, password string) (*models.User, error) {
	user, err := s.lookup(db, username)
	if err != nil {
		return nil, err
	}

	if user.Role != models.UserRoleCandidate && user.Role != models.UserRoleUser {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// AuthenticateAdmin verifies credentials for the admin login path;
// only the ADMIN role may pass.
func (s *AuthServiceImpl) AuthenticateAdmin(db *gorm.DB, username, password string) (*models.User, error) {
	user, err := s.lookup(db, username)
	if err != nil {
		return nil, err
	}

	if user.Role != models.UserRoleAdmin {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthServiceImpl) LoginCandidate(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.AuthenticateCandidate(db, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	return s.buildLoginResponse(user)
}

func (s *AuthServiceImpl) LoginAdmin(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.AuthenticateAdmin(db, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	return s.buildLoginResponse(user)
}

func (s *AuthServiceImpl) FindByUsername(db *gorm.DB, username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(db, username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *AuthServiceImpl) FindByID(db *gorm.DB, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *AuthServiceImpl) lookup(db *gorm.DB, username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(db, username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Absent user and wrong password are indistinguishable.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *AuthServiceImpl) buildLoginResponse(user *models.User) (*dto.LoginResponse, error) {
	token, err := s.tokens.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Success:  true,
		Message:  "Login successful!",
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		Token:    token,
	}, nil
}
