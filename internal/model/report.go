package model

import (
	"time"

	"github.com/google/uuid"
)

type ReportKind string

const (
	ReportKindBestProfession ReportKind = "best-profession"
	ReportKindBestClients    ReportKind = "best-clients"
)

// PaidJob is one paid job row joined with its contract parties, as
// selected for the admin reports.
type PaidJob struct {
	JobID           uuid.UUID
	ContractID      uuid.UUID
	Price           float64
	PaymentDate     time.Time
	ContractorID    uuid.UUID
	Profession      string
	ClientID        uuid.UUID
	ClientFirstName string
	ClientLastName  string
}

type ProfessionEarnings struct {
	Profession string  `json:"profession"`
	AmountPaid float64 `json:"amountPaid"`
}

type ClientSpending struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullname"`
	Paid     float64   `json:"paid"`
}

// RankingReport is the export-friendly view of either admin report.
type RankingReport struct {
	Kind        ReportKind
	PeriodStart time.Time
	PeriodEnd   time.Time
	Entries     []RankingEntry
}

type RankingEntry struct {
	Name   string
	Amount float64
}
