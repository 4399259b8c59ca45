package services

import (
	"errors"
	"log"
	"storefront/internal/models"
	"storefront/internal/redis"
	"storefront/internal/repository"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService is the identity/role gate for the back office. The rest of the
// system only consumes its pass/fail answers.
type AuthService interface {
	Login(username, password string) (string, error)
	IsAuthorized(token string, requiredRole string) bool
	Logout(token string) error
	EnsureAdminUser(username, password string) error
}

type authService struct {
	userRepo    repository.UserRepository
	redisClient *redis.Client
	sessionTTL  time.Duration
}

func NewAuthService(userRepo repository.UserRepository, redisClient *redis.Client, sessionTTL time.Duration) AuthService {
	return &authService{userRepo: userRepo, redisClient: redisClient, sessionTTL: sessionTTL}
}

// Login verifies the password and returns an opaque session token stored in
// Redis for the configured TTL.
func (s *authService) Login(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := uuid.New().String()
	session := &redis.AdminSession{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: time.Now(),
	}
	if err := s.redisClient.SetSession(token, session, s.sessionTTL); err != nil {
		return "", err
	}

	return token, nil
}

func (s *authService) IsAuthorized(token string, requiredRole string) bool {
	session, err := s.redisClient.GetSession(token)
	if err != nil {
		return false
	}
	return session.Role == requiredRole
}

func (s *authService) Logout(token string) error {
	return s.redisClient.DeleteSession(token)
}

// EnsureAdminUser creates the initial back-office account if it does not
// exist yet. Called once at startup.
func (s *authService) EnsureAdminUser(username, password string) error {
	_, err := s.userRepo.GetByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	log.Printf("creating default admin user %q", username)
	return s.userRepo.Create(&models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	})
}
