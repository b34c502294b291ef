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
	"gorm.io/gorm/clause"
)

// resourcePtr constrains P to a pointer to a model embedding models.Resource.
type resourcePtr[T any] interface {
	*T
	Base() *models.Resource
}

// Gateway implements the six ownership-scoped CRUD operations for one
// resource type. Every persistence predicate combines the resource id
// (where applicable) with the owner id of the authenticated caller, so no
// cross-owner access path exists: a record another caller owns is
// indistinguishable from a record that does not exist.
//
// Handler order is deliberate: shape validation (id presence, body
// validation) runs before the identity check, so a malformed request is
// rejected with 400 without the identity being consulted. Only well-formed
// requests get the 401/404 distinction.
type Gateway[T any, P resourcePtr[T]] struct {
	errSelectAtLeastOne error // validation error for an empty bulk-delete set
}

// RegisterRoutes registers the gateway's handlers with the RouterGroup
// that is passed.
func (g Gateway[T, P]) RegisterRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", g.List)
		r.POST("", g.Create)
	}

	{
		r.OPTIONS("/bulk-delete", httputil.OptionsPost)
		r.POST("/bulk-delete", g.BulkDelete)
	}

	// Resource with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", g.Get)
		r.PATCH("/:id", g.Update)
		r.DELETE("/:id", g.Delete)
	}
}

// List returns all resources owned by the caller.
func (g Gateway[T, P]) List(c *gin.Context) {
	owner, ok := identity.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse(errAccessDenied))
		return
	}

	var records []T
	err := models.DB.Where("owner_id = ?", owner).Order("name ASC").Find(&records).Error
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	data := make([]ResourceObject, 0, len(records))
	for i := range records {
		base := P(&records[i]).Base()
		data = append(data, ResourceObject{ID: base.ID, Name: base.Name})
	}

	c.JSON(http.StatusOK, ResourceListResponse{Data: data})
}

// Get returns the single resource matching the id and owned by the caller.
func (g Gateway[T, P]) Get(c *gin.Context) {
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

	var record T
	err = models.DB.Where("id = ? AND owner_id = ?", id, owner).First(&record).Error
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	base := P(&record).Base()
	c.JSON(http.StatusOK, ResourceResponse{Data: ResourceObject{ID: base.ID, Name: base.Name}})
}

// Create persists a new resource with a generated id, owned by the caller.
func (g Gateway[T, P]) Create(c *gin.Context) {
	var editable ResourceEditable
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

	var record T
	base := P(&record).Base()
	*base = editable.model(owner)

	if err := models.DB.Create(&record).Error; err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, RecordResponse{Data: base})
}

// Update changes the name of the single resource matching the id and owned
// by the caller. No resource is created when none matches.
func (g Gateway[T, P]) Update(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(err))
		return
	}

	var editable ResourceEditable
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

	var record T
	err = models.DB.Where("id = ? AND owner_id = ?", id, owner).First(&record).Error
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	err = models.DB.Model(&record).Update("name", editable.Name).Error
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, RecordResponse{Data: P(&record).Base()})
}

// Delete removes the single resource matching the id and owned by the
// caller.
func (g Gateway[T, P]) Delete(c *gin.Context) {
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

	var record T
	err = models.DB.Where("id = ? AND owner_id = ?", id, owner).First(&record).Error
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	err = models.DB.Delete(&record).Error
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Data: IDObject{ID: P(&record).Base().ID}})
}

// BulkDelete removes all resources whose id is in the requested set and
// which the caller owns. Requested ids the caller does not own are skipped
// silently, the response contains only the ids that were actually deleted.
func (g Gateway[T, P]) BulkDelete(c *gin.Context) {
	var editable BulkDeleteEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(err))
		return
	}

	if len(editable.IDs) == 0 {
		c.JSON(http.StatusBadRequest, newErrorResponse(g.errSelectAtLeastOne))
		return
	}

	owner, ok := identity.FromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, newErrorResponse(errAccessDenied))
		return
	}

	// Duplicate ids in the request must not produce duplicate result entries
	ids := slices.Clone(editable.IDs)
	slices.SortFunc(ids, func(a, b uuid.UUID) int { return bytes.Compare(a[:], b[:]) })
	ids = slices.Compact(ids)

	var deleted []T
	err := models.DB.
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Where("owner_id = ? AND id IN ?", owner, ids).
		Delete(&deleted).Error
	if err != nil {
		c.JSON(status(err), newErrorResponse(err))
		return
	}

	data := make([]IDObject, 0, len(deleted))
	for i := range deleted {
		data = append(data, IDObject{ID: P(&deleted[i]).Base().ID})
	}

	c.JSON(http.StatusOK, BulkDeleteResponse{Data: data})
}
