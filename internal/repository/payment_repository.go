package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hireline/marketplace-api/internal/service"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Transfer runs the whole settlement in one transaction: payer debit,
// payee credit, paid flag. The debit and the flag flip are guarded
// updates, so a concurrent payment against the same job or balance rolls
// the loser back instead of losing a write.
func (r *PaymentRepository) Transfer(ctx context.Context, jobID, payerID, payeeID uuid.UUID, amount float64, paidAt time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		debit := tx.Exec(`
			UPDATE profiles
			SET balance = balance - ?
			WHERE id = ? AND balance >= ?
		`, amount, payerID, amount)
		if debit.Error != nil {
			return debit.Error
		}
		if debit.RowsAffected == 0 {
			return service.ErrInsufficientBalance
		}

		credit := tx.Exec(`
			UPDATE profiles
			SET balance = balance + ?
			WHERE id = ?
		`, amount, payeeID)
		if credit.Error != nil {
			return credit.Error
		}
		if credit.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		flag := tx.Exec(`
			UPDATE jobs
			SET paid = TRUE, payment_date = ?
			WHERE id = ? AND NOT paid
		`, paidAt, jobID)
		if flag.Error != nil {
			return flag.Error
		}
		if flag.RowsAffected == 0 {
			return service.ErrAlreadyPaid
		}

		return nil
	})
}
