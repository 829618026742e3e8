package test

import (
	"time"

	"github.com/go-playground/validator/v10"

	"blogCPT/internal/config"
	handlers "blogCPT/internal/handler"
	"blogCPT/internal/service"
)

type testMocks struct {
	Auth     *MockAuthService
	User     *MockUserService
	Post     *MockPostService
	Tokens   *MockTokenService
	UserRepo *MockUserRepository
	Storage  *MockStorage
	Stats    *MockStatsRepository
}

func newTestHandlers() (*handlers.Handlers, *testMocks) {
	mocks := &testMocks{
		Auth:     new(MockAuthService),
		User:     new(MockUserService),
		Post:     new(MockPostService),
		Tokens:   new(MockTokenService),
		UserRepo: new(MockUserRepository),
		Storage:  new(MockStorage),
		Stats:    new(MockStatsRepository),
	}

	cfg := &config.Config{
		AppBaseURL:       "http://localhost:8080",
		JWTSecretKey:     "test-secret",
		SessionDuration:  24 * time.Hour,
		RememberDuration: 720 * time.Hour,
		ResetTokenTTL:    30 * time.Minute,
		PageSize:         5,
		MaxUploadSize:    10 * 1024 * 1024,
	}

	h := &handlers.Handlers{
		AuthService: mocks.Auth,
		UserService: mocks.User,
		PostService: mocks.Post,
		Tokens:      mocks.Tokens,
		Authz:       service.NewAuthorizer(),
		UserRepo:    mocks.UserRepo,
		StatsRepo:   mocks.Stats,
		Storage:     mocks.Storage,
		Cfg:         cfg,
		Validate:    validator.New(),
	}

	return h, mocks
}
