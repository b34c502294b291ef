package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction represents money moving in or out of an account.
//
// Transactions do not carry an owner themselves, ownership follows the
// account they belong to.
type Transaction struct {
	DefaultModel
	Amount     int64      `json:"amount" example:"-125000"`            // Amount in minor units, never zero. Expenses are negative.
	Payee      string     `json:"payee" example:"Warung Bu Sari"`      // Who the money went to or came from
	Notes      *string    `json:"notes"`                               // Free-form notes
	Date       time.Time  `json:"date" example:"2024-03-20T00:00:00Z"` // Date of the transaction
	AccountID  uuid.UUID  `json:"accountId" gorm:"not null"`           // ID of the account the transaction belongs to
	CategoryID *uuid.UUID `json:"categoryId"`                          // ID of the category, if any
}

// BeforeSave sets the timezone for the Date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	_ = t.DefaultModel.AfterFind(tx)

	t.Date = t.Date.In(time.UTC)
	return nil
}
