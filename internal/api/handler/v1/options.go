package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sportmeet/sportmeet-api/internal/api/handler/v1/response"
	"github.com/sportmeet/sportmeet-api/internal/options"
)

type OptionsProvider interface {
	Current() options.Options
}

type OptionsHandler struct {
	provider OptionsProvider
}

func NewOptionsHandler(provider OptionsProvider) *OptionsHandler {
	return &OptionsHandler{
		provider: provider,
	}
}

// HandleGetOptions godoc
// @Summary      Get the selectable option lists
// @Description  Returns the sport, location and performance level lists used to populate form selects.
// @Tags         options
// @Produce      json
// @Success      200  {object}  response.OptionsResponse
// @Router       /options [get]
func (h *OptionsHandler) HandleGetOptions(ctx *gin.Context) {
	current := h.provider.Current()

	ctx.JSON(http.StatusOK, response.OptionsResponse{
		Sports:            current.Sports,
		Locations:         current.Locations,
		PerformanceLevels: current.PerformanceLevels,
	})
}
