package v1

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tarefasapp/tarefas/internal/auth"
)

func (h *handlerImpl) requireIdentity(c *gin.Context) (auth.Identity, bool) {
	identity, ok := getIdentityFromContext(c)
	if !ok {
		h.logger.Error().Msg("no identity found in context")
		abort(c, newUnauthorizedError(errTokenRequired.Error()))
		return auth.Identity{}, false
	}
	return identity, true
}

func (h *handlerImpl) requireIDParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn().
			Str("param", name).
			Str("value", raw).
			Msg("invalid id parameter")
		abort(c, newBadRequestError("invalid "+name))
		return 0, false
	}
	return id, true
}

// isClock accepts HH:MM and HH:MM:SS.
func isClock(value string) bool {
	for _, layout := range []string{"15:04", time.TimeOnly} {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}
