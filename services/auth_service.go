package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bugify-api/dto"
	"github.com/bugify-api/models"
	"github.com/bugify-api/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// loginFailedMessage is returned for wrong email, wrong password, and wrong
// role alike, so a caller cannot tell which factor failed.
const loginFailedMessage = "Invalid email, password, or role"

// AuthService handles registration and authentication.
type AuthService struct {
	users  UserStore
	tokens *TokenService
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserStore, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a new user account. Duplicate emails are rejected
// case-insensitively; the plaintext password never reaches the store.
func (s *AuthService) Register(req dto.RegisterRequest) (models.User, error) {
	if req.Password != req.ConfirmPassword {
		return models.User{}, utils.NewValidationError("Passwords do not match")
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	email := strings.ToLower(req.Email)
	_, err := s.users.FindByEmail(email)
	if err == nil {
		return models.User{}, utils.NewConflictError("Email already registered")
	}
	if !isNotFound(err) {
		return models.User{}, err
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		// Role prefix keeps ids readable; the UUID makes concurrent
		// registrations collision-free.
		ID:         fmt.Sprintf("%s-%s", role, uuid.NewString()),
		Name:       req.Name,
		Email:      email,
		Password:   string(digest),
		Role:       role,
		JoinedDate: time.Now().UTC().Format("2006-01-02"),
	}

	if err := s.users.Create(user); err != nil {
		// A concurrent registration can slip past the lookup; the unique
		// index on email is the authority.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, utils.NewConflictError("Email already registered")
		}
		return models.User{}, err
	}
	return user, nil
}

// Login authenticates a user against the (email, role) pair and returns a
// signed token with the user record.
func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmailAndRole(req.Email, req.Role)
	if err != nil {
		return nil, utils.NewUnauthorizedError(loginFailedMessage)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, utils.NewUnauthorizedError(loginFailedMessage)
	}

	token, expiresAt, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt,
	}, nil
}

// GetByEmail resolves the user a validated token refers to.
func (s *AuthService) GetByEmail(email string) (models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if isNotFound(err) {
			return models.User{}, utils.NewNotFoundError("User not found")
		}
		return models.User{}, err
	}
	return user, nil
}
