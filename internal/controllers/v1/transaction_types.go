package v1

import (
	"strings"
	"time"

	"github.com/duit-app/backend/internal/models"
	"github.com/google/uuid"
)

// TransactionEditable represents all caller-mutable fields of a transaction.
type TransactionEditable struct {
	Amount     int64      `json:"amount" example:"-125000"`            // Amount in minor units, never zero. Expenses are negative.
	Payee      string     `json:"payee" example:"Warung Bu Sari"`      // Who the money went to or came from
	Notes      *string    `json:"notes"`                               // Free-form notes
	Date       time.Time  `json:"date" example:"2024-03-20T00:00:00Z"` // Date of the transaction
	AccountID  uuid.UUID  `json:"accountId"`                           // ID of the account the transaction belongs to
	CategoryID *uuid.UUID `json:"categoryId"`                          // ID of the category, if any
}

// validate normalizes and checks the input.
func (e *TransactionEditable) validate() error {
	e.Payee = strings.TrimSpace(e.Payee)

	if e.Amount == 0 {
		return errAmountZero
	}

	if e.Payee == "" {
		return errPayeeEmpty
	}

	if e.Date.IsZero() {
		return errDateInvalid
	}

	if e.AccountID == uuid.Nil {
		return errAccountRequired
	}

	return nil
}

// model maps the editable field subset onto the persistence schema.
func (e TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Amount:     e.Amount,
		Payee:      e.Payee,
		Notes:      e.Notes,
		Date:       e.Date,
		AccountID:  e.AccountID,
		CategoryID: e.CategoryID,
	}
}

type TransactionResponse struct {
	Data *models.Transaction `json:"data"` // The transaction
}

type TransactionListResponse struct {
	Data []models.Transaction `json:"data"` // List of transactions on the caller's accounts
}
