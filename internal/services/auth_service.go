package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"strawberryroute/internal/models"
	"strawberryroute/internal/repositories"
	"strawberryroute/pkg/mailer"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Errors surfaced by AuthService. Handlers map these to HTTP statuses.
var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid token")
	ErrExpiredToken         = errors.New("token expired")
	ErrRecoveryCodeMismatch = errors.New("recovery code mismatch")
)

const recoveryCodeTTL = time.Hour

// Claims is the identity payload embedded in a signed token.
type Claims struct {
	UserID   uint        `json:"userId"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.StandardClaims
}

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	mail      mailer.Mailer
}

// NewAuthService creates a new AuthService. The signing secret is injected
// here rather than read from the environment so it can be swapped per test.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, mail mailer.Mailer) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  3 * time.Hour,
		mail:      mail,
	}
}

// RegisterUser registers a new user, hashes their password, and saves them to
// the database. Accounts default to the PRODUCER role.
func (s *AuthService) RegisterUser(user *models.User) error {
	if existingUser, err := s.userRepo.GetByUsername(user.Username); err == nil && existingUser != nil {
		return fmt.Errorf("username '%s' already taken", user.Username)
	}
	if existingUser, err := s.userRepo.GetByEmail(user.Email); err == nil && existingUser != nil {
		return fmt.Errorf("email '%s' already registered", user.Email)
	}

	if user.Role == "" {
		user.Role = models.RoleProducer
	}
	if !user.Role.IsValid() {
		return fmt.Errorf("invalid role %q", user.Role)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// LoginUser authenticates a user and returns a signed token if successful.
func (s *AuthService) LoginUser(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		// Do not reveal whether the username exists.
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.IssueToken(user)
}

// IssueToken produces a signed HS256 token embedding the user's identity and
// role, valid for a fixed window from now. There is no refresh mechanism.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.tokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// VerifyToken validates the signature and expiry of a token and returns the
// decoded claims. Pure function of token, secret and clock; no I/O.
func (s *AuthService) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrExpiredToken
		}
		log.Printf("Token validation error: %v", err)
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ForgotPassword stores a short-lived recovery code on the user record and
// mails it to them.
func (s *AuthService) ForgotPassword(email string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}

	code, err := generateRecoveryCode()
	if err != nil {
		return fmt.Errorf("failed to generate recovery code: %w", err)
	}

	expiresAt := time.Now().Add(recoveryCodeTTL)
	user.RecoveryCode = &code
	user.RecoveryCodeExpiresAt = &expiresAt
	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to store recovery code: %w", err)
	}

	body := fmt.Sprintf("<p>Hello %s,</p><p>Your password recovery code is <b>%s</b>. It expires in one hour.</p>", user.Username, code)
	if err := s.mail.Send(user.Email, "Password recovery", body); err != nil {
		return fmt.Errorf("failed to send recovery mail: %w", err)
	}
	return nil
}

// ChangePassword verifies the recovery code, stores the new password hash and
// clears the recovery fields.
func (s *AuthService) ChangePassword(email, recoveryCode, newPassword string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}

	if user.RecoveryCode == nil || *user.RecoveryCode != recoveryCode {
		return ErrRecoveryCodeMismatch
	}
	if user.RecoveryCodeExpiresAt != nil && time.Now().After(*user.RecoveryCodeExpiresAt) {
		return ErrRecoveryCodeMismatch
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword)
	user.RecoveryCode = nil
	user.RecoveryCodeExpiresAt = nil

	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}

// generateRecoveryCode returns a random six digit code.
func generateRecoveryCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
