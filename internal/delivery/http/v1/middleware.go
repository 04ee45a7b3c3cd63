package v1

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tarefasapp/tarefas/internal/auth"
)

const identityCtxKey = "identity"

// HandleAuthMiddleware rejects requests without a bearer token with 401
// and requests with an invalid one with 403.
func (h *handlerImpl) HandleAuthMiddleware(c *gin.Context) {
	const authHeader = "Authorization"
	header := c.GetHeader(authHeader)
	if header == "" {
		h.logger.Warn().Msg("authorization header required")
		abort(c, newUnauthorizedError(errTokenRequired.Error()))
		return
	}

	const bearerPrefix = "Bearer"
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != bearerPrefix || parts[1] == "" {
		h.logger.Warn().Msg("invalid authorization header")
		abort(c, newUnauthorizedError(errTokenRequired.Error()))
		return
	}

	identity, err := h.tokens.Validate(parts[1])
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to validate token")
		abort(c, newForbiddenError(errInvalidToken.Error()))
		return
	}

	c.Set(identityCtxKey, *identity)
	c.Next()
}

func getIdentityFromContext(c *gin.Context) (auth.Identity, bool) {
	value, exists := c.Get(identityCtxKey)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}
