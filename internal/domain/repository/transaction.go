package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations obtained from the factory use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	// ClothingRepo returns a ClothingRepository bound to the current transaction.
	ClothingRepo() ClothingRepository

	// BrandRepo returns a BrandRepository bound to the current transaction.
	BrandRepo() BrandRepository

	// ReviewRepo returns a ReviewRepository bound to the current transaction.
	ReviewRepo() ReviewRepository

	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// OperatorRepo returns an OperatorRepository bound to the current transaction.
	OperatorRepo() OperatorRepository

	// CategoryRepo returns a CategoryRepository bound to the current transaction.
	CategoryRepo() CategoryRepository

	// ProductRepo returns a ProductRepository bound to the current transaction.
	ProductRepo() ProductRepository

	// VariantRepo returns a VariantRepository bound to the current transaction.
	VariantRepo() VariantRepository

	// OrderRepo returns an OrderRepository bound to the current transaction.
	OrderRepo() OrderRepository
}
