package handlers_test

import (
	"context"
	"testing"
	"time"

	"hirely-api/config"
	"hirely-api/internal/api/handlers"
	"hirely-api/internal/api/routes"
	"hirely-api/internal/app"
	"hirely-api/internal/models"
	"hirely-api/internal/services"
	"hirely-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Mock Services ---

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, *services.TokenPair, error) {
	args := m.Called(ctx, req)
	var user *models.User
	var pair *services.TokenPair
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	if args.Get(1) != nil {
		pair = args.Get(1).(*services.TokenPair)
	}
	return user, pair, args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *services.TokenPair, error) {
	args := m.Called(ctx, req)
	var user *models.User
	var pair *services.TokenPair
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	if args.Get(1) != nil {
		pair = args.Get(1).(*services.TokenPair)
	}
	return user, pair, args.Error(2)
}

func (m *MockUserService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*services.TokenPair, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenPair), args.Error(1)
}

func (m *MockUserService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) DeleteProfile(ctx context.Context, req *dto.DeleteProfileRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

var _ services.UserService = (*MockUserService)(nil)

type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) ListActiveJobs(ctx context.Context) ([]models.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobService) UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

var _ services.JobService = (*MockJobService)(nil)

type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Apply(ctx context.Context, req *dto.ApplyRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) ListForUser(ctx context.Context, req *dto.ListApplicationsByUserRequest) ([]dto.ApplicationWithJob, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ApplicationWithJob), args.Error(1)
}

func (m *MockApplicationService) ListAll(ctx context.Context) ([]dto.ApplicationDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ApplicationDetail), args.Error(1)
}

func (m *MockApplicationService) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

var _ services.ApplicationService = (*MockApplicationService)(nil)

// --- Test Setup ---

type testMocks struct {
	users        *MockUserService
	jobs         *MockJobService
	applications *MockApplicationService
}

// setupRouter builds a gin engine with the full route table wired to mock
// services, using the same registration path as the real server.
func setupRouter(t *testing.T) (*gin.Engine, *testMocks) {
	t.Helper()

	validate := validator.New()
	require.NoError(t, handlers.RegisterCustomValidations(validate))

	mocks := &testMocks{
		users:        new(MockUserService),
		jobs:         new(MockJobService),
		applications: new(MockApplicationService),
	}

	application := &app.Application{
		Config: &config.Config{
			JWT: config.JWTConfig{
				Secret:            testSecret,
				AccessExpiration:  15 * time.Minute,
				RefreshExpiration: 7 * 24 * time.Hour,
			},
		},
		Validator:          validate,
		UserService:        mocks.users,
		JobService:         mocks.jobs,
		ApplicationService: mocks.applications,
	}

	router := gin.New()
	routes.RegisterRoutes(router, application)
	return router, mocks
}

// signTestToken issues an access token the auth middleware will accept.
func signTestToken(t *testing.T, userID uuid.UUID, role models.Role) string {
	t.Helper()

	now := time.Now()
	claims := &services.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(15 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// signExpiredToken issues a token whose expiry is already in the past.
func signExpiredToken(t *testing.T, userID uuid.UUID, role models.Role) string {
	t.Helper()

	claims := &services.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}
