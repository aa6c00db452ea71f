package postgres

import (
	"context"
	"fmt"

	"backlot/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a single GORM transaction and hands out repositories bound to it,
// so every store access inside one Execute call shares the same transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // a GORM transaction is itself a *gorm.DB
}

// DirectorRepo returns a director repository bound to the transaction.
func (f *gormRepositoryFactory) DirectorRepo() repository.DirectorRepository {
	return NewDirectorRepository(f.tx)
}

// MovieRepo returns a movie repository bound to the transaction.
func (f *gormRepositoryFactory) MovieRepo() repository.MovieRepository {
	return NewMovieRepository(f.tx)
}

// StudioRepo returns a studio repository bound to the transaction.
func (f *gormRepositoryFactory) StudioRepo() repository.StudioRepository {
	return NewStudioRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
// The transaction commits only when fn returns nil; any error or panic
// rolls it back.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
