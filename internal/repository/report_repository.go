package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/hireline/marketplace-api/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// ListPaidJobsInRange returns paid jobs joined with their contract
// parties, ordered by payment date so that ranking ties resolve to the
// earliest-paid entry.
func (r *ReportRepository) ListPaidJobsInRange(ctx context.Context, from, toExclusive time.Time) ([]model.PaidJob, error) {
	var rows []model.PaidJob
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			j.id AS job_id,
			j.contract_id,
			j.price,
			j.payment_date,
			c.contractor_id,
			contractor.profession,
			c.client_id,
			client.first_name AS client_first_name,
			client.last_name AS client_last_name
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles contractor ON contractor.id = c.contractor_id
		JOIN profiles client ON client.id = c.client_id
		WHERE j.paid
			AND j.payment_date >= ?
			AND j.payment_date < ?
		ORDER BY j.payment_date ASC, j.id ASC
	`, from, toExclusive).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
