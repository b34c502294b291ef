package v1

import (
	"bytes"
	"net/http"

	"github.com/duit-app/backend/internal/httputil"
	"github.com/duit-app/backend/internal/identity"
	"github.com/duit-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
//
// Transactions share the request and response plumbing of the generic
// gateway but implement their own predicates: they have no owner column,
// so every query is scoped through the owning account.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	{
		r.OPTIONS("/bulk-delete", httputil.OptionsPost)
		r.POST("/bulk-delete", BulkDeleteTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// ownedTransactions returns a query scoped to transactions whose account
// belongs to the given owner.
func ownedTransactions(owner string) *gorm.DB {
	return models.DB.
		Model(&models.Transaction{}).
		Select("transactions.*").
		Joins("JOIN accounts ON accounts.id = transactions.account_id").
		Where("accounts.owner_id = ?", owner)
}

// checkReferences verifies that the account and, if set, the category the
// transaction points to belong to the caller. References to resources of
// other owners are reported as not found, never as forbidden.
func checkReferences(editable TransactionEditable, owner string) error {
	err := models.DB.Where("id = ? AND owner_id = ?", editable.AccountID, owner).First(&models.Account{}).Error
	if err != nil {
		return err
	}

	if editable.CategoryID != nil {
		err = models.DB.Where("id = ? AND owner_id = ?", editable.CategoryID, owner).First(&models.Category{}).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// GetTransactions returns all transactions on the caller's accounts,
// newest first.
func GetTransactions(c *gin.Context) {
	owner, ok := identity.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse(errAccessDenied))
		return
	}

	transactions := make([]models.Transaction, 0)
	err := ownedTransactions(owner).Order("date DESC").Find(&transactions).Error
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}

// GetTransaction returns a specific transaction on one of the caller's
// accounts.
func GetTransaction(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(err))
		return
	}

	owner, ok := identity.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse(errAccessDenied))
		return
	}

	var transaction models.Transaction
	err = ownedTransactions(owner).Where("transactions.id = ?", id).First(&transaction).Error
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// CreateTransaction persists a new transaction on one of the caller's
// accounts.
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(err))
		return
	}

	if err := editable.validate(); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(err))
		return
	}

	owner, ok := identity.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse(errAccessDenied))
		return
	}

	if err := checkReferences(editable, owner); err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	transaction := editable.model()
	if err := models.DB.Create(&transaction).Error; err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// UpdateTransaction replaces the editable fields of a transaction on one of
// the caller's accounts.
func UpdateTransaction(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(err))
		return
	}

	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(err))
		return
	}

	if err := editable.validate(); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(err))
		return
	}

	owner, ok := identity.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse(errAccessDenied))
		return
	}

	var transaction models.Transaction
	err = ownedTransactions(owner).Where("transactions.id = ?", id).First(&transaction).Error
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	// The updated references must belong to the caller, too
	if err := checkReferences(editable, owner); err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	// Select all editable columns so that cleared fields (notes, categoryId)
	// are set to NULL instead of being skipped as zero values
	err = models.DB.Model(&transaction).
		Select("amount", "payee", "notes", "date", "account_id", "category_id").
		Updates(editable.model()).Error
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: &transaction})
}

// DeleteTransaction removes a transaction from one of the caller's
// accounts.
func DeleteTransaction(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(err))
		return
	}

	owner, ok := identity.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse(errAccessDenied))
		return
	}

	var transaction models.Transaction
	err = ownedTransactions(owner).Where("transactions.id = ?", id).First(&transaction).Error
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Data: IDObject{ID: transaction.ID}})
}

// BulkDeleteTransactions removes all transactions whose id is in the
// requested set and which sit on an account of the caller. Requested ids on
// accounts of other owners are skipped silently.
func BulkDeleteTransactions(c *gin.Context) {
	var editable BulkDeleteEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(err))
		return
	}

	if len(editable.IDs) == 0 {
		c.JSON(http.StatusBadRequest, newErrorResponse(errSelectTransactions))
		return
	}

	owner, ok := identity.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse(errAccessDenied))
		return
	}

	ids := slices.Clone(editable.IDs)
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	ids = slices.Compact(ids)

	var deleted []models.Transaction
	err := models.DB.
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Where("id IN ? AND account_id IN (?)", ids,
			models.DB.Model(&models.Account{}).Select("id").Where("owner_id = ?", owner)).
		Delete(&deleted).Error
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	data := make([]IDObject, 0, len(deleted))
	for _, transaction := range deleted {
		data = append(data, IDObject{ID: transaction.ID})
	}

	c.JSON(http.StatusOK, BulkDeleteResponse{Data: data})
}
