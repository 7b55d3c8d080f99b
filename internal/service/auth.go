package service

import (
	"context"
	"errors"
	"regexp"
	"unicode/utf8"

	"library-backend/internal/domain"
	"library-backend/internal/logger"
	"library-backend/internal/repository"
	"library-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPhone    = errors.New("phone number format is invalid")
	ErrPasswordTooWeak = errors.New("password must be at least 6 characters")
	ErrInvalidName     = errors.New("name must be between 2 and 20 characters")
)

var phonePattern = regexp.MustCompile(`^09\d{8}$`)

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, phone, password, name string) (*domain.User, error) {
	if !phonePattern.MatchString(phone) {
		return nil, ErrInvalidPhone
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooWeak
	}
	if n := utf8.RuneCountInString(name); n < 2 || n > 20 {
		return nil, ErrInvalidName
	}

	exists, err := s.userRepo.ExistsByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrPhoneRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		PhoneNumber:  phone,
		PasswordHash: string(hash),
		Name:         name,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User registered", "user_id", user.ID)
	return user, nil
}

func (s *authService) Login(ctx context.Context, phone, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		logger.Warn("Failed to update last login time", "user_id", user.ID, "error", err)
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.PhoneNumber)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
