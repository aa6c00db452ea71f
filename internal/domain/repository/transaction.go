package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to scope transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations obtained from
	// the factory use the same database transaction and therefore see
	// the scope's own pending writes.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction.
type RepositoryFactory interface {
	// DirectorRepo returns a DirectorRepository bound to the current transaction.
	DirectorRepo() DirectorRepository

	// MovieRepo returns a MovieRepository bound to the current transaction.
	MovieRepo() MovieRepository

	// StudioRepo returns a StudioRepository bound to the current transaction.
	StudioRepo() StudioRepository
}
