package repository

import "context"

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Products   ProductRepository
	Categories CategoryRepository
	Sales      SaleRepository
	Movements  StockMovementRepository
	Archive    DeletedProductRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil,
// Rollback en cualquier otro caso. Garantiza atomicidad de cada operación de escritura.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
