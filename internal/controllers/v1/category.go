package v1

import (
	"github.com/duit-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// categories is the gateway instance for models.Category.
var categories = Gateway[models.Category, *models.Category]{
	errSelectAtLeastOne: errSelectCategories,
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	categories.RegisterRoutes(r)
}
