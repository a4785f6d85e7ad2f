package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hireline/marketplace-api/internal/model"
	"github.com/hireline/marketplace-api/internal/service"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db, mock
}

func contractColumns() []string {
	return []string{"id", "client_id", "contractor_id", "terms", "status", "created_at"}
}

func TestContractLookupScopesByClientKey(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewContractRepository(db)

	client := model.Profile{ID: uuid.New(), Type: model.ProfileTypeClient}
	contractID := uuid.New()

	mock.ExpectQuery(`(?s)FROM contracts\s+WHERE id = \$1 AND client_id = \$2`).
		WithArgs(contractID.String(), client.ID.String()).
		WillReturnRows(sqlmock.NewRows(contractColumns()).
			AddRow(contractID.String(), client.ID.String(), uuid.NewString(), "terms", "in_progress", time.Now()))

	contract, err := repo.GetByIDForProfile(context.Background(), contractID, client)
	require.NoError(t, err)
	require.Equal(t, contractID, contract.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContractLookupScopesByContractorKey(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewContractRepository(db)

	contractor := model.Profile{ID: uuid.New(), Type: model.ProfileTypeContractor}
	contractID := uuid.New()

	mock.ExpectQuery(`(?s)FROM contracts\s+WHERE id = \$1 AND contractor_id = \$2`).
		WithArgs(contractID.String(), contractor.ID.String()).
		WillReturnRows(sqlmock.NewRows(contractColumns()))

	_, err := repo.GetByIDForProfile(context.Background(), contractID, contractor)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveExcludesTerminated(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewContractRepository(db)

	client := model.Profile{ID: uuid.New(), Type: model.ProfileTypeClient}

	mock.ExpectQuery(`(?s)FROM contracts\s+WHERE client_id = \$1 AND status <> 'terminated'`).
		WithArgs(client.ID.String()).
		WillReturnRows(sqlmock.NewRows(contractColumns()).
			AddRow(uuid.NewString(), client.ID.String(), uuid.NewString(), "terms", "new", time.Now()))

	contracts, err := repo.ListActiveForProfile(context.Background(), client)
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListUnpaidSkipsQueryForEmptyContractSet(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewJobRepository(db)

	jobs, err := repo.ListUnpaidByContracts(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, jobs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferCommitsAllThreeWrites(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPaymentRepository(db)

	jobID := uuid.New()
	payerID := uuid.New()
	payeeID := uuid.New()
	paidAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE profiles\s+SET balance = balance - \$1\s+WHERE id = \$2 AND balance >= \$3`).
		WithArgs(100.0, payerID.String(), 100.0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE profiles\s+SET balance = balance \+ \$1\s+WHERE id = \$2`).
		WithArgs(100.0, payeeID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE jobs\s+SET paid = TRUE, payment_date = \$1\s+WHERE id = \$2 AND NOT paid`).
		WithArgs(paidAt, jobID.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Transfer(context.Background(), jobID, payerID, payeeID, 100.0, paidAt)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRollsBackOnInsufficientBalance(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE profiles\s+SET balance = balance - \$1`).
		WithArgs(100.0, sqlmock.AnyArg(), 100.0).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Transfer(context.Background(), uuid.New(), uuid.New(), uuid.New(), 100.0, time.Now())
	require.ErrorIs(t, err, service.ErrInsufficientBalance)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRollsBackWhenJobAlreadyPaid(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE profiles\s+SET balance = balance - \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE profiles\s+SET balance = balance \+ \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE jobs\s+SET paid = TRUE`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Transfer(context.Background(), uuid.New(), uuid.New(), uuid.New(), 100.0, time.Now())
	require.ErrorIs(t, err, service.ErrAlreadyPaid)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListPaidJobsInRangeBindsBothBounds(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewReportRepository(db)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)FROM jobs j\s+JOIN contracts c ON c\.id = j\.contract_id.*WHERE j\.paid\s+AND j\.payment_date >= \$1\s+AND j\.payment_date < \$2`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{
			"job_id", "contract_id", "price", "payment_date",
			"contractor_id", "profession",
			"client_id", "client_first_name", "client_last_name",
		}).AddRow(uuid.NewString(), uuid.NewString(), 100.0, from.Add(time.Hour),
			uuid.NewString(), "welder",
			uuid.NewString(), "Ada", "Lovelace"))

	rows, err := repo.ListPaidJobsInRange(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "welder", rows[0].Profession)
	require.NoError(t, mock.ExpectationsWereMet())
}
