package repository

import (
	"context"
	"sync"

	"saicollege/internal/models"

	"go.uber.org/zap"
)

// AdminFileRepository persists the single admin account.
type AdminFileRepository struct {
	file jsonFile
	mu   sync.Mutex
}

func NewAdminFileRepository(path string, logger *zap.Logger) *AdminFileRepository {
	return &AdminFileRepository{file: jsonFile{path: path, logger: logger}}
}

// Get returns ErrNotFound when no account has been stored yet.
func (r *AdminFileRepository) Get(ctx context.Context) (*models.AdminAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var account models.AdminAccount
	found, err := r.file.read(&account)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &account, nil
}

func (r *AdminFileRepository) Save(ctx context.Context, account *models.AdminAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.file.write(account)
}
