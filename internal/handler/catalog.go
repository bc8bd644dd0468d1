package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/printshop-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CatalogService interface {
	GetProduct(ctx context.Context, id int64) (entities.Product, error)
	GetProductBySKU(ctx context.Context, sku string) (entities.Product, error)
	ListProducts(ctx context.Context, page entities.Page) ([]entities.Product, error)
	CheckStock(ctx context.Context, productID int64, qty int) (entities.StockCheck, error)
}

type CatalogHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CatalogService
}

func NewCatalogHandler(logger *slog.Logger, svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		logger:   logger.With(slog.String("handler", "catalog")),
		validate: newValidator(),
		svc:      svc,
	}
}

func (h *CatalogHandler) Init(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/sku/{sku}", h.GetProductBySKU)
		r.Get("/{id}", h.GetProduct)
		r.Post("/{id}/check-stock", h.CheckStock)
	})
}

// ListProducts returns active products.
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        skip   query     int  false  "Rows to skip"
// @Param        limit  query     int  false  "Page size, at most 100"
// @Success      200  {array}   Product
// @Failure      422  {object}  utils.ValidationErrorResponse "Invalid paging"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, fields := parsePage(r)
	if len(fields) > 0 {
		utils.WriteValidationError(w, nil, http.StatusUnprocessableEntity, fields)
		return
	}

	products, err := h.svc.ListProducts(ctx, page)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "list products")
		return
	}

	res := make([]Product, 0, len(products))
	for _, p := range products {
		res = append(res, ProductEntityToJSON(p))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetProduct returns an active product by id.
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse "Product not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /products/{id} [get]
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(r, "id")
	if !ok {
		writeBadID(w, "id")
		return
	}

	product, err := h.svc.GetProduct(ctx, id)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "get product")
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// GetProductBySKU returns an active product by SKU.
// @Summary      Get product by SKU
// @Tags         products
// @Produce      json
// @Param        sku  path      string  true  "Stock keeping unit"
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse "Product not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /products/sku/{sku} [get]
func (h *CatalogHandler) GetProductBySKU(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	product, err := h.svc.GetProductBySKU(ctx, chi.URLParam(r, "sku"))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "get product by sku")
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// CheckStock reports whether a product has enough stock for a quantity.
// @Summary      Check stock
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id     path      int                true  "Product id"
// @Param        check  body      CheckStockRequest  true  "Quantity"
// @Success      200  {object}  StockCheck
// @Failure      404  {object}  utils.ErrorResponse "Product not found"
// @Failure      422  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /products/{id}/check-stock [post]
func (h *CatalogHandler) CheckStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(r, "id")
	if !ok {
		writeBadID(w, "id")
		return
	}

	var req CheckStockRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err, http.StatusUnprocessableEntity, nil)
		return
	}

	check, err := h.svc.CheckStock(ctx, id, req.Quantity)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "check stock")
		return
	}

	utils.WriteJSON(w, StockCheckEntityToJSON(check), http.StatusOK)
}
