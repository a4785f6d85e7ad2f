package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hireline/marketplace-api/internal/model"
)

// ContractStore scopes every query to the querying profile: clients are
// matched on client_id, contractors on contractor_id.
type ContractStore interface {
	GetByIDForProfile(ctx context.Context, id uuid.UUID, profile model.Profile) (*model.Contract, error)
	ListActiveForProfile(ctx context.Context, profile model.Profile) ([]model.Contract, error)
	ListInProgressIDs(ctx context.Context, profile model.Profile) ([]uuid.UUID, error)
}

type ContractService struct {
	contracts ContractStore
}

func NewContractService(contracts ContractStore) *ContractService {
	return &ContractService{contracts: contracts}
}

// GetByID returns the contract only when the caller is a party to it.
// A contract owned by someone else is indistinguishable from a missing one.
func (s *ContractService) GetByID(ctx context.Context, id uuid.UUID, caller model.Profile) (*model.Contract, error) {
	contract, err := s.contracts.GetByIDForProfile(ctx, id, caller)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return contract, nil
}

// ListActive returns the caller's non-terminated contracts.
func (s *ContractService) ListActive(ctx context.Context, caller model.Profile) ([]model.Contract, error) {
	contracts, err := s.contracts.ListActiveForProfile(ctx, caller)
	if err != nil {
		return nil, err
	}
	if contracts == nil {
		contracts = []model.Contract{}
	}
	return contracts, nil
}
