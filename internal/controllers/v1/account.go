package v1

import (
	"github.com/duit-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// accounts is the gateway instance for models.Account.
var accounts = Gateway[models.Account, *models.Account]{
	errSelectAtLeastOne: errSelectAccounts,
}

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup) {
	accounts.RegisterRoutes(r)
}
