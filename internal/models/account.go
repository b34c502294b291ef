package models

// Account represents a financial account, e.g. a bank account or a wallet.
//
// Deleting an account deletes all of its transactions.
type Account struct {
	Resource
	Transactions []Transaction `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
