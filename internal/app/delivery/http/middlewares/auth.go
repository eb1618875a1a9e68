package middlewares

import (
	"context"
	"net/http"
	"strings"

	"carepass-service/internal/app/config"
	"carepass-service/internal/pkg/constvars"
	"carepass-service/internal/pkg/exceptions"
	"carepass-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}
}

// Authenticate rejects requests without a bearer token and requests whose
// token does not verify against the configured secret. A missing token is
// unauthorized; a present but unverifiable token is forbidden. On success the
// token's user ID is placed on the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		userID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_USER_ID_KEY, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
