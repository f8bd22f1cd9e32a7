package impl

import (
	"context"
	"io"
	"log/slog"

	"aeon/config"
	"aeon/internal/domain/repository"
	mockRepo "aeon/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(minPasswordLength int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			MinPasswordLength: minPasswordLength,
		},
	}
}

// expectTx makes txManager run every callback against factory and return its error, like the real manager.
func expectTx(ctx context.Context, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
