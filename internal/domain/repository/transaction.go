package repository

import "context"

// TransactionManager runs work on a single reserved connection.
// This allows the use case layer to handle transactions without depending on GORM.
type TransactionManager interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error or panics the transaction is rolled back. Otherwise, it's committed.
	// All repositories handed out by the factory share that transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	CustomerRepo() CustomerRepository
	UserRepo() UserRepository
	OrderRepo() OrderRepository
	PaymentMethodRepo() PaymentMethodRepository
}
