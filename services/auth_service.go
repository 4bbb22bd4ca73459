package services

import (
	"errors"
	"time"

	"myblog-api/config"
	"myblog-api/models"
	"myblog-api/repositories"
	"myblog-api/utils"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id uint) (*models.User, error)
	IsAdmin(email string) bool
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register creates an account. Admin rights never come from registration;
// they come from the allow-list only.
func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	if res := utils.ValidateEmail(req.Email); !res.Valid {
		return nil, &models.AuthError{Code: models.AuthMalformedAddress}
	}

	existing, err := s.userRepo.GetByEmail(req.Email)
	if err == nil && existing != nil {
		return nil, errors.New("user already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

// Login checks malformed-address, unknown-user and invalid-credentials in
// that order.
func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	if res := utils.ValidateEmail(req.Email); !res.Valid {
		return nil, &models.AuthError{Code: models.AuthMalformedAddress}
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &models.AuthError{Code: models.AuthUnknownUser}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, &models.AuthError{Code: models.AuthInvalidCredentials}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return user, nil
}

func (s *authService) IsAdmin(email string) bool {
	return config.IsAdminEmail(email)
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
		"exp":      now.Add(config.JWTExpiration).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(config.JWTSecret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}
