package models

// Category groups transactions, e.g. "Makanan" or "Transportasi".
//
// Deleting a category keeps its transactions and clears their category
// reference instead.
type Category struct {
	Resource
	Transactions []Transaction `json:"-" gorm:"constraint:OnDelete:SET NULL"`
}
