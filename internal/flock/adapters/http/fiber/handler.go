package fiber

import (
	"context"
	"errors"
	"net/http"

	"kokko-factory-service/internal/flock/core/domain"
	"kokko-factory-service/internal/flock/core/usecase"
	"kokko-factory-service/internal/platform/logger"

	"github.com/gofiber/fiber/v2"
)

type EggUseCase interface {
	Create(ctx context.Context, in usecase.EggInput) (*domain.EggRecord, error)
	List(ctx context.Context) ([]domain.EggRecord, error)
	Update(ctx context.Context, id string, in usecase.EggInput) error
	Delete(ctx context.Context, id string) error
}

type DeathUseCase interface {
	Create(ctx context.Context, in usecase.DeathInput) (*domain.DeathRecord, error)
	List(ctx context.Context) ([]domain.DeathRecord, error)
	Update(ctx context.Context, id string, in usecase.DeathInput) error
	Delete(ctx context.Context, id string) error
}

type FlockHandler struct {
	eggs   EggUseCase
	deaths DeathUseCase
	log    *logger.Logger
}

func NewFlockHandler(eggs EggUseCase, deaths DeathUseCase, log *logger.Logger) *FlockHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &FlockHandler{eggs: eggs, deaths: deaths, log: log}
}

// Register mounts the flock routes on r.
func (h *FlockHandler) Register(r fiber.Router) {
	r.Post("/eggs", h.CreateEgg)
	r.Get("/eggs", h.ListEggs)
	r.Put("/eggs/:id", h.UpdateEgg)
	r.Delete("/eggs/:id", h.DeleteEgg)

	r.Post("/dead-chickens", h.CreateDeath)
	r.Get("/dead-chickens", h.ListDeaths)
	r.Put("/dead-chickens/:id", h.UpdateDeath)
	r.Delete("/dead-chickens/:id", h.DeleteDeath)
}

func (r EggRequest) toInput() (usecase.EggInput, bool) {
	if r.CoopNumber == nil || r.Count == nil {
		return usecase.EggInput{}, false
	}
	return usecase.EggInput{CoopNumber: *r.CoopNumber, Count: *r.Count}, true
}

func (r DeathRequest) toInput() (usecase.DeathInput, bool) {
	if r.CoopNumber == nil || r.Count == nil {
		return usecase.DeathInput{}, false
	}
	return usecase.DeathInput{CoopNumber: *r.CoopNumber, Count: *r.Count, CauseOfDeath: r.CauseOfDeath}, true
}

// CreateEgg godoc
// @Summary Record an egg collection
// @Tags Flock
// @Accept json
// @Produce json
// @Param request body EggRequest true "Egg collection"
// @Success 201 {object} EggResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /eggs [post]
func (h *FlockHandler) CreateEgg(c *fiber.Ctx) error {
	var req EggRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}
	in, ok := req.toInput()
	if !ok {
		return missingFields(c)
	}

	rec, err := h.eggs.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(toEggResponse(*rec))
}

// ListEggs godoc
// @Summary List egg collections
// @Description Newest first
// @Tags Flock
// @Produce json
// @Success 200 {array} EggResponse
// @Failure 500 {object} ErrorResponse
// @Router /eggs [get]
func (h *FlockHandler) ListEggs(c *fiber.Ctx) error {
	recs, err := h.eggs.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	out := make([]EggResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, toEggResponse(r))
	}
	return c.Status(http.StatusOK).JSON(out)
}

// UpdateEgg godoc
// @Summary Edit an egg collection
// @Tags Flock
// @Accept json
// @Produce json
// @Param id path string true "Record id"
// @Param request body EggRequest true "Egg collection"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /eggs/{id} [put]
func (h *FlockHandler) UpdateEgg(c *fiber.Ctx) error {
	var req EggRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}
	in, ok := req.toInput()
	if !ok {
		return missingFields(c)
	}

	if err := h.eggs.Update(c.UserContext(), c.Params("id"), in); err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(StatusResponse{Status: "updated"})
}

// DeleteEgg godoc
// @Summary Delete an egg collection
// @Tags Flock
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /eggs/{id} [delete]
func (h *FlockHandler) DeleteEgg(c *fiber.Ctx) error {
	if err := h.eggs.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(StatusResponse{Status: "deleted"})
}

// CreateDeath godoc
// @Summary Record dead chickens
// @Tags Flock
// @Accept json
// @Produce json
// @Param request body DeathRequest true "Mortality record"
// @Success 201 {object} DeathResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dead-chickens [post]
func (h *FlockHandler) CreateDeath(c *fiber.Ctx) error {
	var req DeathRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}
	in, ok := req.toInput()
	if !ok {
		return missingFields(c)
	}

	rec, err := h.deaths.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(toDeathResponse(*rec))
}

// ListDeaths godoc
// @Summary List mortality records
// @Tags Flock
// @Produce json
// @Success 200 {array} DeathResponse
// @Failure 500 {object} ErrorResponse
// @Router /dead-chickens [get]
func (h *FlockHandler) ListDeaths(c *fiber.Ctx) error {
	recs, err := h.deaths.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	out := make([]DeathResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, toDeathResponse(r))
	}
	return c.Status(http.StatusOK).JSON(out)
}

// UpdateDeath godoc
// @Summary Edit a mortality record
// @Tags Flock
// @Accept json
// @Produce json
// @Param id path string true "Record id"
// @Param request body DeathRequest true "Mortality record"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dead-chickens/{id} [put]
func (h *FlockHandler) UpdateDeath(c *fiber.Ctx) error {
	var req DeathRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}
	in, ok := req.toInput()
	if !ok {
		return missingFields(c)
	}

	if err := h.deaths.Update(c.UserContext(), c.Params("id"), in); err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(StatusResponse{Status: "updated"})
}

// DeleteDeath godoc
// @Summary Delete a mortality record
// @Tags Flock
// @Produce json
// @Param id path string true "Record id"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dead-chickens/{id} [delete]
func (h *FlockHandler) DeleteDeath(c *fiber.Ctx) error {
	if err := h.deaths.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(StatusResponse{Status: "deleted"})
}

func missingFields(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_record",
		Message: "coop_number and count are required",
	})
}

func (h *FlockHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecord):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_record",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrRecordNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	default:
		h.log.Error(c.UserContext(), "flock request failed", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
