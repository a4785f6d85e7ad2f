package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hireline/marketplace-api/internal/model"
)

type JobStore interface {
	ListUnpaidByContracts(ctx context.Context, contractIDs []uuid.UUID) ([]model.Job, error)
	GetWithContract(ctx context.Context, jobID uuid.UUID) (*model.Job, *model.Contract, error)
}

// PaymentStore moves a job's price between the two parties and flips the
// paid flag, all inside one transaction. Implementations report
// ErrAlreadyPaid when the job was paid concurrently and
// ErrInsufficientBalance when the payer no longer covers the amount.
type PaymentStore interface {
	Transfer(ctx context.Context, jobID, payerID, payeeID uuid.UUID, amount float64, paidAt time.Time) error
}

type JobService struct {
	contracts ContractStore
	jobs      JobStore
	payments  PaymentStore
	now       func() time.Time
}

func NewJobService(contracts ContractStore, jobs JobStore, payments PaymentStore) *JobService {
	return &JobService{
		contracts: contracts,
		jobs:      jobs,
		payments:  payments,
		now:       time.Now,
	}
}

// ListUnpaid returns unpaid jobs under the caller's in-progress contracts.
// A caller with no in-progress contracts gets an empty result without a
// jobs query.
func (s *JobService) ListUnpaid(ctx context.Context, caller model.Profile) ([]model.Job, error) {
	contractIDs, err := s.contracts.ListInProgressIDs(ctx, caller)
	if err != nil {
		return nil, err
	}
	if len(contractIDs) == 0 {
		return []model.Job{}, nil
	}

	jobs, err := s.jobs.ListUnpaidByContracts(ctx, contractIDs)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, nil
}

// Pay settles a job: the caller is debited, the contract's contractor is
// credited, the job is marked paid. Guards run in a fixed order and each
// failure is terminal for the request.
func (s *JobService) Pay(ctx context.Context, jobID uuid.UUID, caller model.Profile) (*model.Job, error) {
	if !caller.IsClient() {
		return nil, ErrNotClient
	}

	job, contract, err := s.jobs.GetWithContract(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	if job.Paid {
		return nil, ErrAlreadyPaid
	}
	if contract.ClientID != caller.ID {
		return nil, ErrNotJobClient
	}
	if caller.Balance < job.Price {
		return nil, ErrInsufficientBalance
	}

	paidAt := s.now().UTC()
	if err := s.payments.Transfer(ctx, job.ID, caller.ID, contract.ContractorID, job.Price, paidAt); err != nil {
		return nil, err
	}

	job.Paid = true
	job.PaymentDate = &paidAt
	return job, nil
}
