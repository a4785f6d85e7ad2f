package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hireline/marketplace-api/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

// belongsToColumn picks the foreign key that ties a contract to the
// querying profile.
func belongsToColumn(profileType model.ProfileType) string {
	if profileType == model.ProfileTypeContractor {
		return "contractor_id"
	}
	return "client_id"
}

func (r *ContractRepository) GetByIDForProfile(ctx context.Context, id uuid.UUID, profile model.Profile) (*model.Contract, error) {
	var contract model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, client_id, contractor_id, terms, status, created_at
		FROM contracts
		WHERE id = ? AND `+belongsToColumn(profile.Type)+` = ?
		LIMIT 1
	`, id, profile.ID).Scan(&contract).Error
	if err != nil {
		return nil, err
	}
	if contract.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &contract, nil
}

func (r *ContractRepository) ListActiveForProfile(ctx context.Context, profile model.Profile) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, client_id, contractor_id, terms, status, created_at
		FROM contracts
		WHERE `+belongsToColumn(profile.Type)+` = ? AND status <> 'terminated'
	`, profile.ID).Scan(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *ContractRepository) ListInProgressIDs(ctx context.Context, profile model.Profile) ([]uuid.UUID, error) {
	var contractIDs []uuid.UUID
	err := r.db.WithContext(ctx).Raw(`
		SELECT id
		FROM contracts
		WHERE `+belongsToColumn(profile.Type)+` = ? AND status = 'in_progress'
	`, profile.ID).Scan(&contractIDs).Error
	if err != nil {
		return nil, err
	}
	return contractIDs, nil
}
