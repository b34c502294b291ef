package v1

import (
	"strings"

	"github.com/duit-app/backend/internal/models"
	duit_uuid "github.com/duit-app/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// URIID is bound from the id path parameter.
type URIID struct {
	ID duit_uuid.UUID `uri:"id" format:"UUID"` // ID of the resource
}

// bindID extracts and checks the id path parameter.
//
// A missing or malformed id is a bad request. This is deliberately checked
// before the identity: malformed requests are rejected without consulting
// the identity at all.
func bindID(c *gin.Context) (uuid.UUID, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return uuid.Nil, errIDRequired
	}

	if uri.ID == duit_uuid.Nil {
		return uuid.Nil, errIDRequired
	}

	return uri.ID.UUID, nil
}

// ErrorResponse is the uniform envelope for all failing requests.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`        // Always false
	Error   string `json:"error" example:"Akses ditolak."` // What went wrong
}

func newErrorResponse(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error()}
}

// ResourceEditable represents the caller-mutable fields of an owned, named
// resource. It is the API contract for accounts and categories and is
// deliberately separate from the persistence schema in internal/models: the
// two are related only by the model() mapping below.
type ResourceEditable struct {
	Name string `json:"name" example:"Tabungan"` // Name of the resource
}

// validate normalizes and checks the input.
func (e *ResourceEditable) validate() error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return errNameEmpty
	}

	return nil
}

// model maps the editable field subset onto the persistence schema,
// attaching the caller as owner.
func (e ResourceEditable) model(owner string) models.Resource {
	return models.Resource{
		Name:    e.Name,
		OwnerID: owner,
	}
}

// ResourceObject is the {id, name} projection returned by list and get.
type ResourceObject struct {
	ID   uuid.UUID `json:"id" example:"5b663cb8-dcb1-4b26-b8e0-80fa79b5b6a1"` // ID of the resource
	Name string    `json:"name" example:"Tabungan"`                           // Name of the resource
}

type ResourceListResponse struct {
	Data []ResourceObject `json:"data"` // List of resources owned by the caller
}

type ResourceResponse struct {
	Data ResourceObject `json:"data"` // The requested resource
}

// RecordResponse wraps a full persisted record. Returned by create and
// update, mirroring the returning clause of the persistence layer.
type RecordResponse struct {
	Data *models.Resource `json:"data"` // The persisted record
}

// IDObject carries only a resource ID.
type IDObject struct {
	ID uuid.UUID `json:"id" example:"5b663cb8-dcb1-4b26-b8e0-80fa79b5b6a1"` // ID of the resource
}

type DeleteResponse struct {
	Data IDObject `json:"data"` // ID of the deleted resource
}

// BulkDeleteEditable is the payload of bulk-delete requests.
type BulkDeleteEditable struct {
	IDs []uuid.UUID `json:"ids"` // IDs of the resources to delete
}

type BulkDeleteResponse struct {
	Data []IDObject `json:"data"` // IDs that were actually deleted
}
