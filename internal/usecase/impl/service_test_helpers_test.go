package impl

import (
	"context"
	"io"
	"log/slog"

	"vitrine/internal/domain/entity"
	"vitrine/internal/domain/repository"
	mockRepo "vitrine/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// discardLogger silences service logging in tests.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// matchAccount matches the account entity handed to the repository on registration.
func matchAccount(email, name, passwordHash string) interface{} {
	return mock.MatchedBy(func(account *entity.Account) bool {
		return account.Email == email && account.Name == name && account.PasswordHash == passwordHash
	})
}

// matchDefaultProfile matches the placeholder profile created alongside a new account.
func matchDefaultProfile(accountID uuid.UUID, name string) interface{} {
	return mock.MatchedBy(func(profile *entity.AgentProfile) bool {
		return profile.AccountID == accountID &&
			profile.Name == name &&
			profile.PhotoURL == defaultProfilePhotoURL &&
			profile.HeaderMessage == defaultProfileHeaderMessage
	})
}

// anyProfile matches any profile entity.
func anyProfile() interface{} {
	return mock.AnythingOfType("*entity.AgentProfile")
}

// anyProperty matches any property entity.
func anyProperty() interface{} {
	return mock.AnythingOfType("*entity.Property")
}

// expectExecute wires the transaction manager mock to run the transactional
// callback against the given factory and propagate its error, which is what
// the real manager does minus the database.
func expectExecute(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
