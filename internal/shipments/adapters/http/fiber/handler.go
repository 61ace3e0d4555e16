package fiber

import (
	"context"
	"errors"
	"net/http"

	"kokko-factory-service/internal/platform/logger"
	"kokko-factory-service/internal/shipments/core/domain"
	"kokko-factory-service/internal/shipments/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type ShipmentUseCase interface {
	Create(ctx context.Context, in usecase.CreateShipmentInput) (*domain.Shipment, error)
	List(ctx context.Context) ([]domain.ShipmentView, error)
	Get(ctx context.Context, id, customerName string) (*domain.ShipmentView, error)
}

type ShipmentHandler struct {
	uc  ShipmentUseCase
	log *logger.Logger
}

func NewShipmentHandler(uc ShipmentUseCase, log *logger.Logger) *ShipmentHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ShipmentHandler{uc: uc, log: log}
}

func (h *ShipmentHandler) Register(r fiber.Router) {
	r.Post("/shipments", h.CreateShipment)
	r.Get("/shipments", h.ListShipments)
	r.Get("/shipments/:id", h.GetShipment)
}

// CreateShipment godoc
// @Summary Record a shipment
// @Description Registers the customer first when the name is new
// @Tags Shipments
// @Accept json
// @Produce json
// @Param request body CreateShipmentRequest true "Shipment payload"
// @Success 201 {object} CreateShipmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shipments [post]
func (h *ShipmentHandler) CreateShipment(c *fiber.Ctx) error {
	var req CreateShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}
	if req.ShippedCount == nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_shipment",
			Message: "customer_name and shipped_count are required",
		})
	}

	s, err := h.uc.Create(c.UserContext(), usecase.CreateShipmentInput{
		CustomerName: req.CustomerName,
		Address:      req.Address,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		ShippedCount: *req.ShippedCount,
		ShipmentDate: req.ShipmentDate,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(CreateShipmentResponse{
		ID:      s.ID,
		Message: "Created successfully",
	})
}

// ListShipments godoc
// @Summary List shipments
// @Description Newest first, with customer contact details
// @Tags Shipments
// @Produce json
// @Success 200 {array} ShipmentResponse
// @Failure 500 {object} ErrorResponse
// @Router /shipments [get]
func (h *ShipmentHandler) ListShipments(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	out := make([]ShipmentResponse, 0, len(list))
	for _, v := range list {
		out = append(out, toShipmentResponse(v))
	}
	return c.Status(http.StatusOK).JSON(out)
}

// GetShipment godoc
// @Summary Get one shipment
// @Tags Shipments
// @Produce json
// @Param id path string true "Shipment id"
// @Param customer_name query string true "Customer name"
// @Success 200 {object} ShipmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shipments/{id} [get]
func (h *ShipmentHandler) GetShipment(c *fiber.Ctx) error {
	v, err := h.uc.Get(c.UserContext(), c.Params("id"), c.Query("customer_name"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toShipmentResponse(*v))
}

func (h *ShipmentHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidShipment):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_shipment",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrShipmentNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	default:
		h.log.Error(c.UserContext(), "shipment request failed", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
