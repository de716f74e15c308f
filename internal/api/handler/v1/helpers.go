package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sportmeet/sportmeet-api/internal/api/handler/v1/response"
	"github.com/sportmeet/sportmeet-api/internal/api/middleware"
	"github.com/sportmeet/sportmeet-api/internal/domain"
	"github.com/sportmeet/sportmeet-api/internal/service"
)

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Tags         healthcheck
// @Produce      plain
// @Success      200 {string} string "."
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.String(http.StatusOK, ".")
}

// getUserFromContext resolves the authenticated user stored in the gin
// context by the JWT middleware.
func getUserFromContext(ctx *gin.Context, svc UserService) (domain.User, *response.Err) {
	value, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return domain.User{}, response.ErrUnauthorized(errors.New("user not authenticated"))
	}

	userID, ok := value.(uint)
	if !ok {
		return domain.User{}, response.ErrUnauthorized(errors.New("invalid user ID in context"))
	}

	user, err := svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return domain.User{}, response.ErrUnauthorized(service.ErrUserNotFound)
		}

		return domain.User{}, response.ErrInternalServerError(err)
	}

	return user, nil
}
