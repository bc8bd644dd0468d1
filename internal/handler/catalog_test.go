package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/printshop-order-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler(t *testing.T) {
	product := entities.Product{
		ID:     1,
		SKU:    "BC-100",
		Name:   "Business cards",
		Price:  decimal.RequireFromString("39.99"),
		Stock:  12,
		Active: true,
	}

	testCases := []struct {
		name         string
		method       string
		target       string
		body         string
		mockBehavior func(svc *mocks.MockCatalogService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "list",
			method: http.MethodGet,
			target: "/products?limit=10",
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().ListProducts(mock.Anything, entities.Page{Limit: 10}).Return([]entities.Product{product}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"sku":"BC-100"`,
		},
		{
			name:   "get by id",
			method: http.MethodGet,
			target: "/products/1",
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().GetProduct(mock.Anything, int64(1)).Return(product, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"price":39.99`,
		},
		{
			name:   "get by sku not found",
			method: http.MethodGet,
			target: "/products/sku/NOPE",
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().GetProductBySKU(mock.Anything, "NOPE").Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"product not found"`,
		},
		{
			name:   "check stock",
			method: http.MethodPost,
			target: "/products/1/check-stock",
			body:   `{"quantity":3}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().CheckStock(mock.Anything, int64(1), 3).Return(entities.StockCheck{
					ProductID:          1,
					RequestedQuantity:  3,
					AvailableStock:     12,
					HasSufficientStock: true,
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"product_id":1,"requested_quantity":3,"available_stock":12,"has_sufficient_stock":true}`,
		},
		{
			name:         "check stock zero quantity",
			method:       http.MethodPost,
			target:       "/products/1/check-stock",
			body:         `{"quantity":0}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {},
			wantStatus:   http.StatusUnprocessableEntity,
			wantBody:     `"quantity"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCatalogService(t)
			tc.mockBehavior(svc)

			r := chi.NewRouter()
			handler.NewCatalogHandler(discardLogger(), svc).Init(r)

			var body io.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.target, body))

			res := rr.Result()
			defer res.Body.Close()
			raw, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(raw), tc.wantBody)
		})
	}
}
