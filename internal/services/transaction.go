package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

// TransactionService runs a unit of work inside one store transaction with a
// deadline.
type TransactionService struct {
	db      *gorm.DB
	timeout time.Duration
	log     logger.Logger
}

// NewTransactionService creates a new TransactionService. A non-positive
// timeout means the caller's context alone bounds the transaction.
func NewTransactionService(db *gorm.DB, timeout time.Duration) *TransactionService {
	return &TransactionService{
		db:      db,
		timeout: timeout,
		log:     logger.New("TransactionService"),
	}
}

// Execute runs fn within a transaction. A non-nil error from fn, a panic, or
// an expired deadline rolls everything back. Store failures are reported as
// ErrTransientStore; errors returned by fn are passed through unchanged.
func (ts *TransactionService) Execute(
	ctx context.Context,
	fn func(context.Context, *gorm.DB) error,
) (err error) {
	log := ts.log.Function("Execute")

	if ts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ts.timeout)
		defer cancel()
	}

	tx := ts.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		log.Er("failed to begin transaction", tx.Error)
		return fmt.Errorf("%w: begin: %w", ErrTransientStore, tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			panicErr := log.ErrMsg("panic during transaction: " + fmt.Sprintf("%v", r))

			if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
				log.Er("CRITICAL: failed to rollback after panic", rollbackErr, "panic", r)
				panic(fmt.Sprintf("transaction rollback failed: %v (original panic: %v)", rollbackErr, r))
			}

			log.Info("transaction rolled back after panic")
			err = panicErr
		}
	}()

	if err = fn(ctx, tx); err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil && !errors.Is(rollbackErr, gorm.ErrInvalidTransaction) {
			log.Er("failed to rollback after function error", rollbackErr, "originalError", err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ErrTransientStore) {
			return fmt.Errorf("%w: transaction aborted: %w", ErrTransientStore, errors.Join(ctxErr, err))
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		log.Er("failed to commit transaction", err)
		return fmt.Errorf("%w: commit: %w", ErrTransientStore, err)
	}

	return nil
}
