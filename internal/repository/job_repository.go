package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hireline/marketplace-api/internal/model"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) ListUnpaidByContracts(ctx context.Context, contractIDs []uuid.UUID) ([]model.Job, error) {
	if len(contractIDs) == 0 {
		return []model.Job{}, nil
	}

	var jobs []model.Job
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, contract_id, description, price, paid, payment_date, created_at
		FROM jobs
		WHERE contract_id = ANY(?) AND NOT paid
		ORDER BY created_at ASC
	`, contractIDs).Scan(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *JobRepository) GetWithContract(ctx context.Context, jobID uuid.UUID) (*model.Job, *model.Contract, error) {
	var row struct {
		ID                uuid.UUID
		ContractID        uuid.UUID
		Description       string
		Price             float64
		Paid              bool
		PaymentDate       *time.Time
		CreatedAt         time.Time
		ClientID          uuid.UUID
		ContractorID      uuid.UUID
		Terms             string
		Status            model.ContractStatus
		ContractCreatedAt time.Time
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			j.id,
			j.contract_id,
			j.description,
			j.price,
			j.paid,
			j.payment_date,
			j.created_at,
			c.client_id,
			c.contractor_id,
			c.terms,
			c.status,
			c.created_at AS contract_created_at
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.id = ?
		LIMIT 1
	`, jobID).Scan(&row).Error
	if err != nil {
		return nil, nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil, gorm.ErrRecordNotFound
	}

	job := &model.Job{
		ID:          row.ID,
		ContractID:  row.ContractID,
		Description: row.Description,
		Price:       row.Price,
		Paid:        row.Paid,
		PaymentDate: row.PaymentDate,
		CreatedAt:   row.CreatedAt,
	}
	contract := &model.Contract{
		ID:           row.ContractID,
		ClientID:     row.ClientID,
		ContractorID: row.ContractorID,
		Terms:        row.Terms,
		Status:       row.Status,
		CreatedAt:    row.ContractCreatedAt,
	}
	return job, contract, nil
}
