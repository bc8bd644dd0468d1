package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/printshop-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const internalErrorMessage = "internal server error"

// newValidator reports struct fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type errMessage struct {
	err error
	msg string
}

var notFoundMessages = []errMessage{
	{entities.ErrOrderNotFound, "order not found"},
	{entities.ErrProductNotFound, "product not found"},
	{entities.ErrUserNotFound, "user not found"},
}

var conflictMessages = []errMessage{
	{entities.ErrOrderNumberTaken, "could not allocate a unique order number"},
	{entities.ErrPaymentIDTaken, "payment id already linked to another order"},
}

// writeServiceError maps the entities error kinds to HTTP responses. Unknown
// errors are logged and hidden behind a generic 500.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, action string) {
	var (
		ve *entities.ValidationError
		ee *entities.ExternalServiceError
	)

	switch {
	case errors.As(err, &ve):
		utils.WriteValidationError(w, nil, http.StatusUnprocessableEntity, map[string]string{ve.Field: ve.Reason})
	case errors.Is(err, entities.ErrValidation):
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrNotFound):
		utils.WriteError(w, lookupMessage(err, notFoundMessages, "not found"), http.StatusNotFound)
	case errors.Is(err, entities.ErrConflict):
		utils.WriteError(w, lookupMessage(err, conflictMessages, "conflict"), http.StatusConflict)
	case errors.As(err, &ee):
		logger.WarnContext(ctx, "external service rejected request", slog.String("action", action), slog.Any("error", err))
		utils.WriteError(w, ee.Reason, http.StatusBadRequest)
	default:
		logger.ErrorContext(ctx, "failed to "+action, slog.Any("error", err))
		utils.WriteError(w, internalErrorMessage, http.StatusInternalServerError)
	}
}

func lookupMessage(err error, table []errMessage, fallback string) string {
	for _, m := range table {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return fallback
}

// pathID parses a positive integer path parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func writeBadID(w http.ResponseWriter, name string) {
	utils.WriteValidationError(w, nil, http.StatusUnprocessableEntity, map[string]string{name: "must be a positive integer"})
}

// parsePage reads skip and limit from the query string. Missing values are
// left zero for the service to default.
func parsePage(r *http.Request) (entities.Page, map[string]string) {
	var (
		page   entities.Page
		fields = map[string]string{}
	)
	q := r.URL.Query()

	if raw := q.Get("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			fields["skip"] = "must be a non-negative integer"
		}
		page.Skip = v
	}
	if raw := q.Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			fields["limit"] = "must be a positive integer"
		}
		page.Limit = v
	}

	if len(fields) > 0 {
		return entities.Page{}, fields
	}
	return page, nil
}
