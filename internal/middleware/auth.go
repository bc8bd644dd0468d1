package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/printshop-order-service/internal/config"
	"github.com/SergeyBogomolovv/printshop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/printshop-order-service/pkg/utils"
	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (any, error)
}

type UserGetter interface {
	GetUserByID(ctx context.Context, id int64) (entities.User, error)
}

type userKey struct{}

// NewTokenValidator validates HS256 bearer tokens issued for cfg.Issuer and
// cfg.Audience.
func NewTokenValidator(cfg config.Auth) (*validator.Validator, error) {
	key := []byte(cfg.Secret)
	return validator.New(
		func(context.Context) (any, error) { return key, nil },
		validator.HS256,
		cfg.Issuer,
		[]string{cfg.Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
}

// Authenticate attaches the active user named by the token's subject to the
// request context. A missing or unusable token leaves the request anonymous.
func Authenticate(logger *slog.Logger, tokens TokenValidator, users UserGetter) func(next http.Handler) http.Handler {
	logger = logger.With(slog.String("middleware", "auth"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			user, ok := authenticate(ctx, logger, r, tokens, users)
			if ok {
				r = r.WithContext(WithUser(ctx, user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func authenticate(ctx context.Context, logger *slog.Logger, r *http.Request, tokens TokenValidator, users UserGetter) (entities.User, bool) {
	token, err := jwtmiddleware.AuthHeaderTokenExtractor(r)
	if err != nil {
		logger.DebugContext(ctx, "malformed authorization header", slog.Any("error", err))
		return entities.User{}, false
	}
	if token == "" {
		return entities.User{}, false
	}

	raw, err := tokens.ValidateToken(ctx, token)
	if err != nil {
		logger.DebugContext(ctx, "invalid token", slog.Any("error", err))
		return entities.User{}, false
	}
	claims, ok := raw.(*validator.ValidatedClaims)
	if !ok {
		return entities.User{}, false
	}

	userID, err := strconv.ParseInt(claims.RegisteredClaims.Subject, 10, 64)
	if err != nil {
		logger.DebugContext(ctx, "token subject is not a user id", slog.String("sub", claims.RegisteredClaims.Subject))
		return entities.User{}, false
	}

	user, err := users.GetUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, entities.ErrUserNotFound) {
			logger.WarnContext(ctx, "failed to load token user", slog.Int64("user_id", userID), slog.Any("error", err))
		}
		return entities.User{}, false
	}
	if !user.Active {
		return entities.User{}, false
	}
	return user, true
}

// RequireUser rejects anonymous requests with 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func UserFromContext(ctx context.Context) (entities.User, bool) {
	user, ok := ctx.Value(userKey{}).(entities.User)
	return user, ok
}

// WithUser returns ctx carrying user as the authenticated caller.
func WithUser(ctx context.Context, user entities.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}
