package fiber

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"kokko-factory-service/internal/marketing/core/domain"
	"kokko-factory-service/internal/marketing/core/usecase"
	"kokko-factory-service/internal/platform/logger"

	"github.com/gofiber/fiber/v2"
)

type ShipmentChartUseCase interface {
	Execute(ctx context.Context, in usecase.ChartInput) (*domain.ShipmentChart, error)
}

type MarketingHandler struct {
	uc  ShipmentChartUseCase
	log *logger.Logger
}

func NewMarketingHandler(uc ShipmentChartUseCase, log *logger.Logger) *MarketingHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &MarketingHandler{uc: uc, log: log}
}

func (h *MarketingHandler) Register(r fiber.Router) {
	r.Get("/marketing/shipments/chart", h.GetShipmentChart)
}

// GetShipmentChart godoc
// @Summary Shipment analytics chart
// @Description Sums shipped counts per vendor and in total, bucketed by day, month or year
// @Tags Marketing
// @Produce json
// @Param group_by query string false "day | month | year (default month)"
// @Param start query string false "Range start, YYYY-MM-DD"
// @Param end query string false "Range end, YYYY-MM-DD"
// @Param series query []string false "Series to plot, repeated per series. Omit for all, pass empty for none." collectionFormat(multi)
// @Success 200 {object} ShipmentChartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /marketing/shipments/chart [get]
func (h *MarketingHandler) GetShipmentChart(c *fiber.Ctx) error {
	in := usecase.ChartInput{
		GroupBy: c.Query("group_by", ""),
		Start:   c.Query("start", ""),
		End:     c.Query("end", ""),
		Series:  seriesParam(c),
	}

	res, err := h.uc.Execute(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidChartQuery):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_query",
				Message: err.Error(),
			})
		default:
			h.log.Error(c.UserContext(), "shipment chart failed", err)
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(toResponse(res))
}

// seriesParam returns nil when series is absent and a possibly empty slice
// when it is present.
func seriesParam(c *fiber.Ctx) []string {
	args := c.Context().QueryArgs()
	if !args.Has("series") {
		return nil
	}
	out := make([]string, 0)
	for _, raw := range args.PeekMulti("series") {
		if s := strings.TrimSpace(string(raw)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
