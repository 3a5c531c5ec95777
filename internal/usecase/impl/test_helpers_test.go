package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"atelier/internal/domain/repository"
	mockRepo "atelier/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectExecute arranges the transaction manager to run the transactional
// function against a factory configured by setup, propagating its error.
func expectExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}
