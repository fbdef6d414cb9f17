package memory

import "context"

// TxManager satisfies the port without transactional semantics; in-memory
// writes are already atomic under the store mutex.
type TxManager struct{}

func NewTxManager() TxManager { return TxManager{} }

func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
