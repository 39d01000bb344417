package services_test

import (
	"io"
	"log"
	"os"
	"testing"
	"time"

	"strawberryroute/internal/models"
	"strawberryroute/internal/repositories"
	"strawberryroute/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockMailer is a mock implementation of mailer.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

const testJWTSecret = "test_jwt_secret"

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockMail := new(MockMailer)
	authService := services.NewAuthService(mockRepo, testJWTSecret, mockMail)

	user := &models.User{
		Username: "joaosilva",
		Email:    "joao@strawberryroute.com",
		Password: "123qwe",
	}

	mockRepo.On("GetByUsername", user.Username).Return(nil, repositories.ErrUserNotFound).Once()
	mockRepo.On("GetByEmail", user.Email).Return(nil, repositories.ErrUserNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	err := authService.RegisterUser(user)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleProducer, user.Role, "accounts default to PRODUCER")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("123qwe")), "password is stored hashed")
	mockRepo.AssertExpectations(t)

	// Username already taken
	mockRepo.On("GetByUsername", user.Username).Return(&models.User{ID: 1}, nil).Once()
	err = authService.RegisterUser(user)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
	mockRepo.AssertExpectations(t)

	// Email already registered
	mockRepo.On("GetByUsername", user.Username).Return(nil, repositories.ErrUserNotFound).Once()
	mockRepo.On("GetByEmail", user.Email).Return(&models.User{ID: 1}, nil).Once()
	err = authService.RegisterUser(user)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockMail := new(MockMailer)
	authService := services.NewAuthService(mockRepo, testJWTSecret, mockMail)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("123qwe"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       7,
		Username: "joaosilva",
		Email:    "joao@strawberryroute.com",
		Password: string(hashedPassword),
		Role:     models.RoleProducer,
	}

	// Successful login: the issued token decodes back to the same identity.
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	token, err := authService.LoginUser("joaosilva", "123qwe")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, models.RoleProducer, claims.Role)
	assert.InDelta(t, time.Now().Add(3*time.Hour).Unix(), claims.ExpiresAt, 5, "tokens are valid for three hours")
	mockRepo.AssertExpectations(t)

	// Wrong password
	mockRepo.On("GetByUsername", user.Username).Return(user, nil).Once()
	_, err = authService.LoginUser("joaosilva", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// Unknown user gets the same generic error
	mockRepo.On("GetByUsername", "nobody").Return(nil, repositories.ErrUserNotFound).Once()
	_, err = authService.LoginUser("nobody", "123qwe")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_VerifyToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockMail := new(MockMailer)
	authService := services.NewAuthService(mockRepo, testJWTSecret, mockMail)

	user := &models.User{ID: 7, Username: "joaosilva", Role: models.RoleProducer}

	// Issue followed by Verify round-trips the claim.
	token, err := authService.IssueToken(user)
	assert.NoError(t, err)
	claims, err := authService.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "joaosilva", claims.Username)
	assert.Equal(t, models.RoleProducer, claims.Role)

	// A well-signed but expired token fails with the expiry error.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &services.Claims{
		UserID:   7,
		Username: "joaosilva",
		Role:     models.RoleProducer,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Add(-4 * time.Hour).Unix(),
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	})
	expiredString, _ := expired.SignedString([]byte(testJWTSecret))
	_, err = authService.VerifyToken(expiredString)
	assert.ErrorIs(t, err, services.ErrExpiredToken)

	// A token signed with a different secret is invalid.
	otherService := services.NewAuthService(mockRepo, "some_other_secret", mockMail)
	tampered, err := otherService.IssueToken(user)
	assert.NoError(t, err)
	_, err = authService.VerifyToken(tampered)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Garbage is invalid, not expired.
	_, err = authService.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestAuthService_ForgotPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockMail := new(MockMailer)
	authService := services.NewAuthService(mockRepo, testJWTSecret, mockMail)

	user := &models.User{
		ID:       7,
		Username: "joaosilva",
		Email:    "joao@strawberryroute.com",
	}

	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil).Once()
	mockMail.On("Send", user.Email, "Password recovery", mock.AnythingOfType("string")).Return(nil).Once()

	err := authService.ForgotPassword(user.Email)
	assert.NoError(t, err)
	assert.NotNil(t, user.RecoveryCode)
	assert.Len(t, *user.RecoveryCode, 6)
	assert.NotNil(t, user.RecoveryCodeExpiresAt)
	assert.True(t, user.RecoveryCodeExpiresAt.After(time.Now()))
	mockRepo.AssertExpectations(t)
	mockMail.AssertExpectations(t)

	// Unknown email
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, repositories.ErrUserNotFound).Once()
	err = authService.ForgotPassword("nobody@example.com")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ChangePassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockMail := new(MockMailer)
	authService := services.NewAuthService(mockRepo, testJWTSecret, mockMail)

	code := "123456"
	expiresAt := time.Now().Add(time.Hour)
	oldHash, _ := bcrypt.GenerateFromPassword([]byte("123qwe"), bcrypt.DefaultCost)

	newUser := func() *models.User {
		c := code
		e := expiresAt
		return &models.User{
			ID:                    7,
			Email:                 "joao@strawberryroute.com",
			Password:              string(oldHash),
			RecoveryCode:          &c,
			RecoveryCodeExpiresAt: &e,
		}
	}

	// Correct code: password replaced, recovery fields cleared.
	user := newUser()
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil).Once()
	err := authService.ChangePassword(user.Email, code, "newpassword")
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("newpassword")))
	assert.Nil(t, user.RecoveryCode)
	assert.Nil(t, user.RecoveryCodeExpiresAt)
	mockRepo.AssertExpectations(t)

	// Wrong code
	user = newUser()
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	err = authService.ChangePassword(user.Email, "654321", "newpassword")
	assert.ErrorIs(t, err, services.ErrRecoveryCodeMismatch)
	mockRepo.AssertExpectations(t)

	// Expired code
	user = newUser()
	past := time.Now().Add(-time.Minute)
	user.RecoveryCodeExpiresAt = &past
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	err = authService.ChangePassword(user.Email, code, "newpassword")
	assert.ErrorIs(t, err, services.ErrRecoveryCodeMismatch)
	mockRepo.AssertExpectations(t)
}
