package model

import (
	"time"

	"github.com/google/uuid"
)

// Job is a unit of billable work under a contract. PaymentDate is set
// exactly when Paid flips to true and never cleared afterwards.
type Job struct {
	ID          uuid.UUID  `json:"id"`
	ContractID  uuid.UUID  `json:"contractId"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Paid        bool       `json:"paid"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
