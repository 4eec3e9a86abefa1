package repository

import "context"

// Repositories agrupa los repositorios atados a una misma conexión o transacción.
type Repositories struct {
	Products  ProductRepository
	Sales     SaleRepository
	Purchases PurchaseRepository
	Expenses  ExpenseRepository
	Movements StockMovementRepository
}

// TxRunner ejecuta fn dentro de una transacción, pasando repositorios atados a esa tx.
// Commit si fn devuelve nil; Rollback en cualquier otro caso.
// Dentro de fn solo deben usarse los repos recibidos.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repositories) error) error
}

// Store adaptador de persistencia completo.
type Store interface {
	TxRunner
	Repositories() Repositories
	Close() error
}
