package fiber

import (
	"context"
	"errors"
	"net/http"

	"kokko-factory-service/internal/platform/logger"
	"kokko-factory-service/internal/prediction/core/domain"
	"kokko-factory-service/internal/prediction/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type SampleUseCase interface {
	Record(ctx context.Context, in usecase.RecordSampleInput) (*domain.Sample, error)
	List(ctx context.Context) ([]domain.Sample, error)
}

type ChartUseCase interface {
	Execute(ctx context.Context, in usecase.ChartInput) (*domain.PredictionChart, error)
}

type PredictionHandler struct {
	samples SampleUseCase
	chart   ChartUseCase
	log     *logger.Logger
}

func NewPredictionHandler(samples SampleUseCase, chart ChartUseCase, log *logger.Logger) *PredictionHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &PredictionHandler{samples: samples, chart: chart, log: log}
}

func (h *PredictionHandler) Register(r fiber.Router) {
	r.Post("/predictions", h.RecordSample)
	r.Get("/predictions", h.ListSamples)
	r.Get("/predictions/chart", h.GetChart)
}

// RecordSample godoc
// @Summary Record a prediction sample
// @Description Stores the day's cumulative comfort potential and actual count; the predicted count is derived. Re-posting a date replaces it.
// @Tags Prediction
// @Accept json
// @Produce json
// @Param request body SampleRequest true "Prediction sample"
// @Success 201 {object} SampleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /predictions [post]
func (h *PredictionHandler) RecordSample(c *fiber.Ctx) error {
	var req SampleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}
	if req.CumulativePotential == nil || req.ActualCount == nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "missing_fields",
			Message: "cumulative_potential and actual_count are required",
		})
	}

	s, err := h.samples.Record(c.UserContext(), usecase.RecordSampleInput{
		Date:                req.Date,
		CumulativePotential: *req.CumulativePotential,
		ActualCount:         *req.ActualCount,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSample) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_sample", Message: err.Error()})
		}
		h.log.Error(c.UserContext(), "record prediction sample failed", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: "internal_server_error"})
	}
	return c.Status(http.StatusCreated).JSON(toSampleResponse(*s))
}

// ListSamples godoc
// @Summary List prediction samples
// @Description Oldest first
// @Tags Prediction
// @Produce json
// @Success 200 {array} SampleResponse
// @Failure 500 {object} ErrorResponse
// @Router /predictions [get]
func (h *PredictionHandler) ListSamples(c *fiber.Ctx) error {
	samples, err := h.samples.List(c.UserContext())
	if err != nil {
		h.log.Error(c.UserContext(), "list prediction samples failed", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: "internal_server_error"})
	}
	out := make([]SampleResponse, 0, len(samples))
	for _, s := range samples {
		out = append(out, toSampleResponse(s))
	}
	return c.Status(http.StatusOK).JSON(out)
}

// GetChart godoc
// @Summary Egg production prediction chart
// @Description Averages predicted count, actual count and cumulative comfort potential per bucket
// @Tags Prediction
// @Produce json
// @Param group_by query string false "day | week | month (default day)"
// @Param start query string false "Range start, YYYY-MM-DD"
// @Param end query string false "Range end, YYYY-MM-DD"
// @Success 200 {object} PredictionChartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /predictions/chart [get]
func (h *PredictionHandler) GetChart(c *fiber.Ctx) error {
	res, err := h.chart.Execute(c.UserContext(), usecase.ChartInput{
		GroupBy: c.Query("group_by", ""),
		Start:   c.Query("start", ""),
		End:     c.Query("end", ""),
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidChartQuery) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_query", Message: err.Error()})
		}
		h.log.Error(c.UserContext(), "prediction chart failed", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: "internal_server_error"})
	}
	return c.Status(http.StatusOK).JSON(toChartResponse(res))
}
