package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	catalogerrors "github.com/abgdnv/gocatalog/internal/errors"
	"github.com/abgdnv/gocatalog/internal/service"
	"github.com/abgdnv/gocatalog/internal/store"
	"github.com/stretchr/testify/assert"
)

// mockCatalogService is a mock implementation of the CatalogService interface
type mockCatalogService struct {
	page     *service.ProductPage
	product  store.Product
	products []store.Product
	stats    map[string]int
	error    error
}

func (m *mockCatalogService) List(_ context.Context, _ string, _, _ int) (*service.ProductPage, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.page, nil
}

func (m *mockCatalogService) FindByID(_ context.Context, _ string) (store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockCatalogService) Create(_ context.Context, _ store.Product) (store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockCatalogService) Update(_ context.Context, _ string, _ store.Product) (store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockCatalogService) DeleteByID(_ context.Context, _ string) error {
	return m.error
}

func (m *mockCatalogService) Search(_ context.Context, _ string) ([]store.Product, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.products, nil
}

func (m *mockCatalogService) Stats(_ context.Context) (map[string]int, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.stats, nil
}

func newTestHandler(mock *mockCatalogService) *Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewHandler(mock, logger)
}

func Test_CatalogAPI_FindByID(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockCatalogService
		productID    string
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success - product found",
			mockService: mockCatalogService{
				product: store.Product{"id": "1", "name": "Shirt", "price": 19.99},
			},
			productID:    "1",
			expectedCode: http.StatusOK,
			expectedBody: `{"id":"1","name":"Shirt","price":19.99}`,
		},
		{
			name: "Error - product not found",
			mockService: mockCatalogService{
				error: catalogerrors.ErrProductNotFound,
			},
			productID:    "999",
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Product not found"}`,
		},
		{
			name: "Error - unexpected service error",
			mockService: mockCatalogService{
				error: io.ErrUnexpectedEOF,
			},
			productID:    "2",
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal Server Error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodGet, "/products/"+tc.productID, nil)
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()
			// when
			api.FindByID(rr, req)
			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_CatalogAPI_List(t *testing.T) {
	page := &service.ProductPage{
		Products:   []store.Product{{"id": "1", "name": "Shirt"}},
		Total:      1,
		Page:       1,
		Limit:      10,
		TotalPages: 1,
	}
	testCases := []struct {
		name         string
		mockService  mockCatalogService
		target       string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - default pagination",
			mockService:  mockCatalogService{page: page},
			target:       "/products",
			expectedCode: http.StatusOK,
			expectedBody: `{"products":[{"id":"1","name":"Shirt"}],"total":1,"page":1,"limit":10,"totalPages":1}`,
		},
		{
			// non-numeric paging input falls back to defaults instead of failing
			name:         "Success - bogus page and limit fall back to defaults",
			mockService:  mockCatalogService{page: page},
			target:       "/products?page=abc&limit=-3",
			expectedCode: http.StatusOK,
			expectedBody: `{"products":[{"id":"1","name":"Shirt"}],"total":1,"page":1,"limit":10,"totalPages":1}`,
		},
		{
			name:         "Error - service failure",
			mockService:  mockCatalogService{error: io.ErrUnexpectedEOF},
			target:       "/products",
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal Server Error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rr := httptest.NewRecorder()
			// when
			api.List(rr, req)
			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_CatalogAPI_Create(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockCatalogService
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success - product created",
			mockService: mockCatalogService{
				product: store.Product{"id": "generated", "name": "Shirt"},
			},
			body:         `{"name":"Shirt","description":"d","price":10,"category":"clothes","inStock":true}`,
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":"generated","name":"Shirt"}`,
		},
		{
			name: "Error - validation failure from service",
			mockService: mockCatalogService{
				error: catalogerrors.NewValidation("Price must be a positive number"),
			},
			body:         `{"name":"Shirt","description":"d","price":-5,"category":"clothes","inStock":true}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Price must be a positive number"}`,
		},
		{
			name:         "Error - malformed JSON body",
			mockService:  mockCatalogService{},
			body:         `{not json`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid request body"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			// when
			api.Create(rr, req)
			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_CatalogAPI_Update(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockCatalogService
		productID    string
		body         string
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success - product updated",
			mockService: mockCatalogService{
				product: store.Product{"id": "1", "name": "Shirt", "price": 12.5},
			},
			productID:    "1",
			body:         `{"name":"Shirt","description":"d","price":12.5,"category":"clothes","inStock":true}`,
			expectedCode: http.StatusOK,
			expectedBody: `{"id":"1","name":"Shirt","price":12.5}`,
		},
		{
			name: "Error - product not found",
			mockService: mockCatalogService{
				error: catalogerrors.ErrProductNotFound,
			},
			productID:    "999",
			body:         `{"name":"Shirt","description":"d","price":12.5,"category":"clothes","inStock":true}`,
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Product not found"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodPut, "/products/"+tc.productID, strings.NewReader(tc.body))
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()
			// when
			api.Update(rr, req)
			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_CatalogAPI_DeleteByID(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockCatalogService
		productID    string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Success - product deleted",
			mockService:  mockCatalogService{},
			productID:    "1",
			expectedCode: http.StatusNoContent,
			expectedBody: "",
		},
		{
			name: "Error - product not found",
			mockService: mockCatalogService{
				error: catalogerrors.ErrProductNotFound,
			},
			productID:    "999",
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Product not found"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodDelete, "/products/"+tc.productID, nil)
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()
			// when
			api.DeleteByID(rr, req)
			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			if tc.expectedBody == "" {
				assert.Empty(t, rr.Body.String(), "delete success has an empty body")
				return
			}
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_CatalogAPI_Search(t *testing.T) {
	testCases := []struct {
		name         string
		mockService  mockCatalogService
		target       string
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success - matches returned without pagination",
			mockService: mockCatalogService{
				products: []store.Product{{"id": "1", "name": "Blue Shirt"}},
			},
			target:       "/products/search?q=shirt",
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":"1","name":"Blue Shirt"}]`,
		},
		{
			name:         "Error - missing q parameter",
			mockService:  mockCatalogService{},
			target:       "/products/search",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Query parameter q is required for search"}`,
		},
		{
			name:         "Error - empty q parameter",
			mockService:  mockCatalogService{},
			target:       "/products/search?q=",
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Query parameter q is required for search"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rr := httptest.NewRecorder()
			// when
			api.Search(rr, req)
			// then
			assert.Equal(t, tc.expectedCode, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func Test_CatalogAPI_Stats(t *testing.T) {
	// given
	api := newTestHandler(&mockCatalogService{stats: map[string]int{"A": 2, "B": 1}})
	req := httptest.NewRequest(http.MethodGet, "/products/stats", nil)
	rr := httptest.NewRecorder()
	// when
	api.Stats(rr, req)
	// then
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"A":2,"B":1}`, rr.Body.String())
}

func Test_CatalogAPI_HealthCheck(t *testing.T) {
	api := newTestHandler(&mockCatalogService{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	api.HealthCheck(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
