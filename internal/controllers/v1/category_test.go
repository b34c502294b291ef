package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/duit-app/backend/internal/controllers/v1"
	"github.com/duit-app/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestCategoriesEmptyList() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories", "", test.BearerFor(suite.T(), "user_1"))

	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`{"data": []}`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestCategoryLifecycle() {
	category := suite.createTestCategory("user_1", "Makanan")
	url := fmt.Sprintf("/v1/categories/%s", category.ID)

	recorder := test.Request(suite.T(), http.MethodGet, url, "", test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var getResponse v1.ResourceResponse
	test.DecodeResponse(suite.T(), &recorder, &getResponse)
	suite.Assert().Equal("Makanan", getResponse.Data.Name)

	recorder = test.Request(suite.T(), http.MethodPatch, url, v1.ResourceEditable{Name: "Jajan"}, test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var patchResponse v1.RecordResponse
	test.DecodeResponse(suite.T(), &recorder, &patchResponse)
	suite.Assert().Equal("Jajan", patchResponse.Data.Name)

	recorder = test.Request(suite.T(), http.MethodDelete, url, "", test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(fmt.Sprintf(`{"data": {"id": "%s"}}`, category.ID), recorder.Body.String())

	recorder = test.Request(suite.T(), http.MethodGet, url, "", test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryNameValidation() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.ResourceEditable{Name: " "}, test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.ErrorResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Nama tidak boleh kosong.", response.Error)
}

func (suite *TestSuiteStandard) TestCategoryOwnership() {
	category := suite.createTestCategory("user_1", "Makanan")
	url := fmt.Sprintf("/v1/categories/%s", category.ID)

	for _, tt := range []struct {
		method string
		body   any
	}{
		{http.MethodGet, ""},
		{http.MethodPatch, v1.ResourceEditable{Name: "Jajan"}},
		{http.MethodDelete, ""},
	} {
		recorder := test.Request(suite.T(), tt.method, url, tt.body, test.BearerFor(suite.T(), "user_2"))
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	}
}

// Accounts and categories are separate namespaces, an account id does not
// resolve as a category.
func (suite *TestSuiteStandard) TestCategoryAccountIsolation() {
	account := suite.createTestAccount("user_1", "Cash")

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/categories/%s", account.ID), "", test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	listRecorder := test.Request(suite.T(), http.MethodGet, "/v1/categories", "", test.BearerFor(suite.T(), "user_1"))
	suite.Assert().JSONEq(`{"data": []}`, listRecorder.Body.String())
}

func (suite *TestSuiteStandard) TestCategoryBulkDelete() {
	first := suite.createTestCategory("user_1", "Makanan")
	second := suite.createTestCategory("user_1", "Transportasi")
	foreign := suite.createTestCategory("user_2", "Hiburan")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories/bulk-delete", v1.BulkDeleteEditable{
		IDs: []uuid.UUID{first.ID, second.ID, foreign.ID},
	}, test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	ids, err := unmarshalIDs(recorder.Body.Bytes())
	suite.Require().Nil(err)
	suite.Assert().ElementsMatch([]uuid.UUID{first.ID, second.ID}, ids)
}

func (suite *TestSuiteStandard) TestCategoryBulkDeleteEmpty() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories/bulk-delete", v1.BulkDeleteEditable{}, test.BearerFor(suite.T(), "user_1"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.ErrorResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Pilih setidaknya satu kategori untuk dihapus.", response.Error)
}
