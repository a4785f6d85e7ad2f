package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hireline/marketplace-api/internal/config"
	"github.com/hireline/marketplace-api/internal/model"
)

type ReportStore interface {
	// ListPaidJobsInRange returns paid jobs with payment_date in
	// [from, toExclusive), ordered by payment date.
	ListPaidJobsInRange(ctx context.Context, from, toExclusive time.Time) ([]model.PaidJob, error)
}

type ReportExporter interface {
	Generate(report model.RankingReport) ([]byte, error)
}

type ReportService struct {
	reports       ReportStore
	excel         ReportExporter
	pdf           ReportExporter
	clientsLimit  int
	exportFormats []string
}

func NewReportService(reports ReportStore, excel, pdf ReportExporter, cfg *config.Config) *ReportService {
	return &ReportService{
		reports:       reports,
		excel:         excel,
		pdf:           pdf,
		clientsLimit:  cfg.Reports.BestClientsLimit,
		exportFormats: cfg.Reports.ExportFormats,
	}
}

// BestProfession returns the profession that earned the most over the
// period, both bounds inclusive.
func (s *ReportService) BestProfession(ctx context.Context, start, end time.Time) (*model.ProfessionEarnings, error) {
	rows, err := s.paidJobs(ctx, start, end)
	if err != nil {
		return nil, err
	}
	ranking := rankProfessions(rows)
	return &ranking[0], nil
}

// BestClients returns the top clients by amount paid over the period.
// A non-positive limit falls back to the configured default.
func (s *ReportService) BestClients(ctx context.Context, start, end time.Time, limit int) ([]model.ClientSpending, error) {
	if limit <= 0 {
		limit = s.clientsLimit
	}
	rows, err := s.paidJobs(ctx, start, end)
	if err != nil {
		return nil, err
	}
	ranking := rankClients(rows)
	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking, nil
}

type ExportInput struct {
	Kind   model.ReportKind
	Format string
	Start  time.Time
	End    time.Time
	Limit  int
}

type ExportResult struct {
	FileName string
	Content  []byte
}

// Export renders the full ranking behind either admin report as a
// downloadable file.
func (s *ReportService) Export(ctx context.Context, input ExportInput) (*ExportResult, error) {
	format := strings.ToLower(strings.TrimSpace(input.Format))
	if format == "" {
		format = s.exportFormats[0]
	}
	if !s.formatAllowed(format) {
		return nil, fmt.Errorf("%w: unsupported export format %q", ErrInvalidInput, format)
	}

	rows, err := s.paidJobs(ctx, input.Start, input.End)
	if err != nil {
		return nil, err
	}

	report := model.RankingReport{
		Kind:        input.Kind,
		PeriodStart: dateOnly(input.Start),
		PeriodEnd:   dateOnly(input.End),
	}
	switch input.Kind {
	case model.ReportKindBestProfession:
		for _, entry := range rankProfessions(rows) {
			report.Entries = append(report.Entries, model.RankingEntry{Name: entry.Profession, Amount: entry.AmountPaid})
		}
	case model.ReportKindBestClients:
		limit := input.Limit
		if limit <= 0 {
			limit = s.clientsLimit
		}
		clients := rankClients(rows)
		if len(clients) > limit {
			clients = clients[:limit]
		}
		for _, entry := range clients {
			report.Entries = append(report.Entries, model.RankingEntry{Name: entry.FullName, Amount: entry.Paid})
		}
	default:
		return nil, fmt.Errorf("%w: unknown report kind %q", ErrInvalidInput, input.Kind)
	}

	exporter := s.excel
	if format == "pdf" {
		exporter = s.pdf
	}
	content, err := exporter.Generate(report)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		FileName: buildExportFileName(report, format),
		Content:  content,
	}, nil
}

func (s *ReportService) formatAllowed(format string) bool {
	for _, allowed := range s.exportFormats {
		if strings.EqualFold(allowed, format) {
			return true
		}
	}
	return false
}

func (s *ReportService) paidJobs(ctx context.Context, start, end time.Time) ([]model.PaidJob, error) {
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}
	periodStart := dateOnly(start)
	periodEnd := dateOnly(end)
	if periodStart.After(periodEnd) {
		return nil, fmt.Errorf("%w: start must be before or equal to end", ErrInvalidInput)
	}

	endExclusive := periodEnd.Add(24 * time.Hour)
	rows, err := s.reports.ListPaidJobsInRange(ctx, periodStart, endExclusive)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no paid jobs in period", ErrNotFound)
	}
	return rows, nil
}

// rankProfessions sums paid amounts per contract, folds the contract sums
// into each contractor's profession and orders professions by total
// descending. Ties keep first-seen order (stable sort, no secondary key).
func rankProfessions(rows []model.PaidJob) []model.ProfessionEarnings {
	contractOrder, contractSums := sumByContract(rows)
	professionByContract := make(map[uuid.UUID]string, len(rows))
	for _, row := range rows {
		if _, ok := professionByContract[row.ContractID]; !ok {
			professionByContract[row.ContractID] = row.Profession
		}
	}

	var order []string
	totals := make(map[string]float64)
	for _, contractID := range contractOrder {
		profession := professionByContract[contractID]
		if _, ok := totals[profession]; !ok {
			order = append(order, profession)
		}
		totals[profession] += contractSums[contractID]
	}

	ranking := make([]model.ProfessionEarnings, 0, len(order))
	for _, profession := range order {
		ranking = append(ranking, model.ProfessionEarnings{
			Profession: profession,
			AmountPaid: totals[profession],
		})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].AmountPaid > ranking[j].AmountPaid
	})
	return ranking
}

// rankClients mirrors rankProfessions but folds contract sums into the
// contract's client.
func rankClients(rows []model.PaidJob) []model.ClientSpending {
	contractOrder, contractSums := sumByContract(rows)
	clientByContract := make(map[uuid.UUID]model.ClientSpending, len(rows))
	for _, row := range rows {
		if _, ok := clientByContract[row.ContractID]; !ok {
			clientByContract[row.ContractID] = model.ClientSpending{
				ID:       row.ClientID,
				FullName: row.ClientFirstName + " " + row.ClientLastName,
			}
		}
	}

	var order []uuid.UUID
	totals := make(map[uuid.UUID]model.ClientSpending)
	for _, contractID := range contractOrder {
		client := clientByContract[contractID]
		entry, ok := totals[client.ID]
		if !ok {
			order = append(order, client.ID)
			entry = client
		}
		entry.Paid += contractSums[contractID]
		totals[client.ID] = entry
	}

	ranking := make([]model.ClientSpending, 0, len(order))
	for _, clientID := range order {
		ranking = append(ranking, totals[clientID])
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Paid > ranking[j].Paid
	})
	return ranking
}

func sumByContract(rows []model.PaidJob) ([]uuid.UUID, map[uuid.UUID]float64) {
	var order []uuid.UUID
	sums := make(map[uuid.UUID]float64, len(rows))
	for _, row := range rows {
		if _, ok := sums[row.ContractID]; !ok {
			order = append(order, row.ContractID)
		}
		sums[row.ContractID] += row.Price
	}
	return order, sums
}

func buildExportFileName(report model.RankingReport, format string) string {
	period := fmt.Sprintf("%s-%s", report.PeriodStart.Format("20060102"), report.PeriodEnd.Format("20060102"))
	return fmt.Sprintf("%s-%s.%s", report.Kind, period, format)
}

func dateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
