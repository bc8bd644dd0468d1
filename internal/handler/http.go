package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/middleware"
	"github.com/SergeyBogomolovv/printshop-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in entities.NewOrder) (entities.Order, error)
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	GetOrdersByCustomerEmail(ctx context.Context, email string, page entities.Page) ([]entities.Order, error)
	GetOrdersByUser(ctx context.Context, userID int64, page entities.Page) ([]entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	UpdateOrder(ctx context.Context, id int64, upd entities.OrderUpdate) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (entities.Order, error)
	ProcessPayment(ctx context.Context, id int64, paymentID string) (entities.Order, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: newValidator(),
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)
		r.Get("/number/{order_number}", h.GetOrderByNumber)
		r.Get("/customer/{email}", h.GetOrdersByCustomerEmail)
		r.Get("/{id}", h.GetOrderByID)
		r.Put("/{id}", h.UpdateOrder)
		r.Post("/{id}/status/{new_status}", h.UpdateOrderStatus)
		r.Post("/{id}/process-payment", h.ProcessPayment)
	})
	r.With(middleware.RequireUser).Get("/users/me/orders", h.GetMyOrders)
}

// CreateOrder creates an order with its items.
// @Summary      Create order
// @Description  Creates an order and its items in one transaction. Authenticated callers own the order, anonymous callers create a guest order.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      CreateOrderRequest  true  "Order"
// @Success      201    {object}  Order
// @Failure      409    {object}  utils.ErrorResponse "Order number or payment id conflict"
// @Failure      422    {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      500    {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err, http.StatusUnprocessableEntity, nil)
		return
	}

	var userID *int64
	if user, ok := middleware.UserFromContext(ctx); ok {
		userID = &user.ID
	}

	order, err := h.svc.CreateOrder(ctx, req.ToEntity(userID))
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "create order")
		return
	}

	ordersCreated.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// GetOrderByID returns an order by id.
// @Summary      Get order
// @Tags         orders
// @Produce      json
// @Param        id   path      int  true  "Order id"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      422  {object}  utils.ValidationErrorResponse "Invalid id"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(r, "id")
	if !ok {
		writeBadID(w, "id")
		return
	}

	order, err := h.svc.GetOrderByID(ctx, id)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// GetOrderByNumber returns an order by its order number.
// @Summary      Get order by number
// @Tags         orders
// @Produce      json
// @Param        order_number  path      string  true  "Order number"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/number/{order_number} [get]
func (h *OrderHandler) GetOrderByNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNumber := chi.URLParam(r, "order_number")

	if err := h.validate.Var(orderNumber, "required,max=64"); err != nil {
		utils.WriteValidationError(w, nil, http.StatusUnprocessableEntity, map[string]string{"order_number": "must be 1 to 64 characters"})
		return
	}

	order, err := h.svc.GetOrderByNumber(ctx, orderNumber)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "get order by number")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrders returns orders, newest first.
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        status          query     string  false  "Status filter"
// @Param        customer_email  query     string  false  "Customer email filter"
// @Param        user_id         query     int     false  "Owner filter"
// @Param        skip            query     int     false  "Rows to skip"
// @Param        limit           query     int     false  "Page size, at most 100"
// @Success      200  {array}   Order
// @Failure      422  {object}  utils.ValidationErrorResponse "Invalid filter"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, fields := parsePage(r)
	if fields == nil {
		fields = map[string]string{}
	}

	q := r.URL.Query()
	filter := entities.OrderFilter{CustomerEmail: q.Get("customer_email"), Page: page}

	if raw := q.Get("status"); raw != "" {
		status, err := entities.ParseOrderStatus(raw)
		var ve *entities.ValidationError
		if errors.As(err, &ve) {
			fields["status"] = ve.Reason
		}
		filter.Status = status
	}
	if raw := q.Get("user_id"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			fields["user_id"] = "must be a positive integer"
		}
		filter.UserID = &userID
	}
	if len(fields) > 0 {
		utils.WriteValidationError(w, nil, http.StatusUnprocessableEntity, fields)
		return
	}

	orders, err := h.svc.ListOrders(ctx, filter)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "list orders")
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// GetOrdersByCustomerEmail returns the orders placed with an email.
// @Summary      Orders by customer email
// @Tags         orders
// @Produce      json
// @Param        email  path      string  true   "Customer email"
// @Param        skip   query     int     false  "Rows to skip"
// @Param        limit  query     int     false  "Page size, at most 100"
// @Success      200  {array}   Order
// @Failure      422  {object}  utils.ValidationErrorResponse "Invalid email"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/customer/{email} [get]
func (h *OrderHandler) GetOrdersByCustomerEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	email := chi.URLParam(r, "email")

	page, fields := parsePage(r)
	if err := h.validate.Var(email, "required,email"); err != nil {
		if fields == nil {
			fields = map[string]string{}
		}
		fields["email"] = "must be a valid email address"
	}
	if len(fields) > 0 {
		utils.WriteValidationError(w, nil, http.StatusUnprocessableEntity, fields)
		return
	}

	orders, err := h.svc.GetOrdersByCustomerEmail(ctx, email, page)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "get orders by customer email")
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// GetMyOrders returns the orders of the authenticated user.
// @Summary      My orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Rows to skip"
// @Param        limit  query     int  false  "Page size, at most 100"
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse "Not authenticated"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /users/me/orders [get]
func (h *OrderHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, _ := middleware.UserFromContext(ctx)

	page, fields := parsePage(r)
	if len(fields) > 0 {
		utils.WriteValidationError(w, nil, http.StatusUnprocessableEntity, fields)
		return
	}

	orders, err := h.svc.GetOrdersByUser(ctx, user.ID, page)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "get user orders")
		return
	}

	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// UpdateOrderStatus sets the status of an order.
// @Summary      Set order status
// @Tags         orders
// @Produce      json
// @Param        id          path      int     true  "Order id"
// @Param        new_status  path      string  true  "pending, paid, shipped, delivered or cancelled"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Unknown status"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/{id}/status/{new_status} [post]
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(r, "id")
	if !ok {
		writeBadID(w, "id")
		return
	}
	newStatus := chi.URLParam(r, "new_status")

	order, err := h.svc.UpdateOrderStatus(ctx, id, newStatus)

	var ve *entities.ValidationError
	if errors.As(err, &ve) {
		utils.WriteValidationError(w, nil, http.StatusBadRequest, map[string]string{ve.Field: ve.Reason})
		return
	}
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "update order status")
		return
	}

	statusWrites.WithLabelValues(string(order.Status)).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateOrder updates the status and/or payment id of an order.
// @Summary      Update order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id     path      int                 true  "Order id"
// @Param        order  body      UpdateOrderRequest  true  "Fields to update"
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      409  {object}  utils.ErrorResponse "Payment id already linked"
// @Failure      422  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/{id} [put]
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(r, "id")
	if !ok {
		writeBadID(w, "id")
		return
	}

	var req UpdateOrderRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err, http.StatusUnprocessableEntity, nil)
		return
	}

	order, err := h.svc.UpdateOrder(ctx, id, req.ToEntity())
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "update order")
		return
	}

	if req.Status != nil {
		statusWrites.WithLabelValues(string(order.Status)).Inc()
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ProcessPayment marks a pending order paid and links the payment id.
// @Summary      Process payment
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path      int                    true  "Order id"
// @Param        payment  body      ProcessPaymentRequest  true  "Payment id"
// @Success      200  {object}  ProcessPaymentResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Order is not pending"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      409  {object}  utils.ErrorResponse "Payment id already linked"
// @Failure      422  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /orders/{id}/process-payment [post]
func (h *OrderHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := pathID(r, "id")
	if !ok {
		writeBadID(w, "id")
		return
	}

	var req ProcessPaymentRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err, http.StatusUnprocessableEntity, nil)
		return
	}

	order, err := h.svc.ProcessPayment(ctx, id, req.StripePaymentID)

	var ve *entities.ValidationError
	if errors.As(err, &ve) && ve.Field == "status" {
		utils.WriteValidationError(w, nil, http.StatusBadRequest, map[string]string{ve.Field: ve.Reason})
		return
	}
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "process payment")
		return
	}

	statusWrites.WithLabelValues(string(order.Status)).Inc()
	utils.WriteJSON(w, ProcessPaymentResponse{
		Status:    "success",
		Message:   "Payment processed",
		OrderID:   order.ID,
		PaymentID: order.PaymentID,
	}, http.StatusOK)
}
