package v1_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/duit-app/backend/internal/controllers/v1"
	"github.com/duit-app/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountsEmptyList() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/accounts", "", test.BearerFor(suite.T(), "user_1"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"data": []}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestAccountsUnauthorized() {
	id := uuid.New()

	tests := []struct {
		method string
		url    string
		body   any
	}{
		{http.MethodGet, "/v1/accounts", ""},
		{http.MethodPost, "/v1/accounts", v1.ResourceEditable{Name: "Cash"}},
		{http.MethodGet, fmt.Sprintf("/v1/accounts/%s", id), ""},
		{http.MethodPatch, fmt.Sprintf("/v1/accounts/%s", id), v1.ResourceEditable{Name: "Cash"}},
		{http.MethodDelete, fmt.Sprintf("/v1/accounts/%s", id), ""},
		{http.MethodPost, "/v1/accounts/bulk-delete", v1.BulkDeleteEditable{IDs: []uuid.UUID{id}}},
	}

	for _, tt := range tests {
		suite.T().Run(fmt.Sprintf("%s %s", tt.method, tt.url), func(t *testing.T) {
			recorder := test.Request(t, tt.method, tt.url, tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusUnauthorized)

			var response v1.ErrorResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, "Akses ditolak.", response.Error)
			assert.False(t, response.Success)
		})
	}
}

// A malformed id is rejected before the identity is looked at.
func (suite *TestSuiteStandard) TestAccountMalformedIDBeforeIdentity() {
	for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
		recorder := test.Request(suite.T(), method, "/v1/accounts/not-a-uuid", v1.ResourceEditable{Name: "Cash"})
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

		var response v1.ErrorResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().Equal("ID tidak ditemukan.", response.Error)
	}
}

// An invalid body is rejected before the identity is looked at.
func (suite *TestSuiteStandard) TestAccountInvalidBodyBeforeIdentity() {
	tests := []struct {
		name  string
		body  any
		error string
	}{
		{"empty name", v1.ResourceEditable{Name: ""}, "Nama tidak boleh kosong."},
		{"whitespace name", v1.ResourceEditable{Name: "   "}, "Nama tidak boleh kosong."},
		{"broken JSON", `{ "name": `, "Permintaan tidak valid."},
		{"empty body", "", "Permintaan tidak boleh kosong."},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "/v1/accounts", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response v1.ErrorResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, tt.error, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountCreate() {
	account := suite.createTestAccount("user_1", "  Cash  ")

	suite.Assert().Equal("Cash", account.Name, "name must be persisted without surrounding whitespace")
	suite.Assert().NotEqual(uuid.Nil, account.ID)
	suite.Assert().False(account.CreatedAt.IsZero())
}

func (suite *TestSuiteStandard) TestAccountGet() {
	account := suite.createTestAccount("user_1", "Cash")

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/accounts/%s", account.ID), "", test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ResourceResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(account.ID, response.Data.ID)
	suite.Assert().Equal("Cash", response.Data.Name)
}

// The owner is never serialized, not even in the full record returned
// by create.
func (suite *TestSuiteStandard) TestAccountOwnerNotSerialized() {
	account := suite.createTestAccount("user_1", "Cash")

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/accounts/%s", account.ID), "", test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var raw map[string]map[string]any
	test.DecodeResponse(suite.T(), &recorder, &raw)
	suite.Assert().NotContains(raw["data"], "ownerId")
	suite.Assert().NotContains(raw["data"], "OwnerID")

	createRecorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts", v1.ResourceEditable{Name: "Bank"}, test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &createRecorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &createRecorder, &raw)
	suite.Assert().NotContains(raw["data"], "ownerId")
	suite.Assert().NotContains(raw["data"], "OwnerID")
}

func (suite *TestSuiteStandard) TestAccountListSorted() {
	suite.createTestAccount("user_1", "Dompet")
	suite.createTestAccount("user_1", "Bank")
	suite.createTestAccount("user_1", "Cash")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/accounts", "", test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ResourceListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal("Bank", response.Data[0].Name)
	suite.Assert().Equal("Cash", response.Data[1].Name)
	suite.Assert().Equal("Dompet", response.Data[2].Name)
}

func (suite *TestSuiteStandard) TestAccountUpdate() {
	account := suite.createTestAccount("user_1", "Cash")

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/accounts/%s", account.ID), v1.ResourceEditable{Name: "Dompet"}, test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.RecordResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Dompet", response.Data.Name)
	suite.Assert().Equal(account.ID, response.Data.ID)

	// The update is visible on a subsequent read
	getRecorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/accounts/%s", account.ID), "", test.BearerFor(suite.T(), "user_1"))
	var getResponse v1.ResourceResponse
	test.DecodeResponse(suite.T(), &getRecorder, &getResponse)
	suite.Assert().Equal("Dompet", getResponse.Data.Name)
}

func (suite *TestSuiteStandard) TestAccountUpdateNonexistent() {
	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/accounts/%s", uuid.New()), v1.ResourceEditable{Name: "Dompet"}, test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	var response v1.ErrorResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Data tidak ditemukan.", response.Error)
}

func (suite *TestSuiteStandard) TestAccountDelete() {
	account := suite.createTestAccount("user_1", "Cash")

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/accounts/%s", account.ID), "", test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(fmt.Sprintf(`{"data": {"id": "%s"}}`, account.ID), recorder.Body.String())

	getRecorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/accounts/%s", account.ID), "", test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &getRecorder, http.StatusNotFound)
}

// Records of other users are indistinguishable from records that do not
// exist.
func (suite *TestSuiteStandard) TestAccountOwnership() {
	account := suite.createTestAccount("user_1", "Cash")
	url := fmt.Sprintf("/v1/accounts/%s", account.ID)

	// user_1 sees the account
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/accounts", "", test.BearerFor(suite.T(), "user_1"))
	var listResponse v1.ResourceListResponse
	test.DecodeResponse(suite.T(), &recorder, &listResponse)
	suite.Require().Len(listResponse.Data, 1)
	suite.Assert().Equal(account.ID, listResponse.Data[0].ID)

	// user_2 sees an empty list
	recorder = test.Request(suite.T(), http.MethodGet, "/v1/accounts", "", test.BearerFor(suite.T(), "user_2"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"data": []}`, recorder.Body.String())

	// user_2 cannot read, update or delete the account
	for _, tt := range []struct {
		method string
		body   any
	}{
		{http.MethodGet, ""},
		{http.MethodPatch, v1.ResourceEditable{Name: "Milik saya"}},
		{http.MethodDelete, ""},
	} {
		recorder = test.Request(suite.T(), tt.method, url, tt.body, test.BearerFor(suite.T(), "user_2"))
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

		var response v1.ErrorResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Assert().Equal("Data tidak ditemukan.", response.Error)
	}

	// user_1 deletes the account
	recorder = test.Request(suite.T(), http.MethodDelete, url, "", test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(fmt.Sprintf(`{"data": {"id": "%s"}}`, account.ID), recorder.Body.String())

	// It is gone for user_1, too
	recorder = test.Request(suite.T(), http.MethodGet, url, "", test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountBulkDeleteEmpty() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts/bulk-delete", v1.BulkDeleteEditable{}, test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.ErrorResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Pilih setidaknya satu akun untuk dihapus.", response.Error)
}

func (suite *TestSuiteStandard) TestAccountBulkDelete() {
	first := suite.createTestAccount("user_1", "Cash")
	second := suite.createTestAccount("user_1", "Bank")
	foreign := suite.createTestAccount("user_2", "Dompet")

	// Duplicate and foreign ids are skipped silently
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts/bulk-delete", v1.BulkDeleteEditable{
		IDs: []uuid.UUID{first.ID, second.ID, first.ID, foreign.ID, uuid.New()},
	}, test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BulkDeleteResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	deleted := make([]uuid.UUID, 0, len(response.Data))
	for _, object := range response.Data {
		deleted = append(deleted, object.ID)
	}
	suite.Assert().ElementsMatch([]uuid.UUID{first.ID, second.ID}, deleted)

	// user_2 still has their account
	getRecorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/accounts/%s", foreign.ID), "", test.BearerFor(suite.T(), "user_2"))
	test.AssertHTTPStatus(suite.T(), &getRecorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestAccountsDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/accounts", "", test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response v1.ErrorResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Terjadi kesalahan pada server.", response.Error)
}

func (suite *TestSuiteStandard) TestAccountOptions() {
	tests := []struct {
		url   string
		allow string
	}{
		{"/v1/accounts", "OPTIONS, GET, POST"},
		{"/v1/accounts/bulk-delete", "OPTIONS, POST"},
		{fmt.Sprintf("/v1/accounts/%s", uuid.New()), "OPTIONS, GET, PATCH, DELETE"},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodOptions, tt.url, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
		suite.Assert().Equal(tt.allow, recorder.Header().Get("allow"))
	}
}

// unmarshalIDs is a helper for tests comparing returned id sets.
func unmarshalIDs(data []byte) ([]uuid.UUID, error) {
	var response v1.BulkDeleteResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(response.Data))
	for _, object := range response.Data {
		ids = append(ids, object.ID)
	}

	return ids, nil
}
