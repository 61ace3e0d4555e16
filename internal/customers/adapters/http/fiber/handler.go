package fiber

import (
	"context"
	"errors"
	"net/http"

	"kokko-factory-service/internal/customers/core/domain"
	"kokko-factory-service/internal/customers/core/usecase"
	"kokko-factory-service/internal/platform/logger"

	"github.com/gofiber/fiber/v2"
)

type CustomerUseCase interface {
	Create(ctx context.Context, in usecase.CreateCustomerInput) (*domain.Customer, error)
	BulkCreate(ctx context.Context, in usecase.BulkCreateCustomersInput) (usecase.BulkCreateCustomersResult, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Delete(ctx context.Context, name string) error
}

type CustomerHandler struct {
	uc  CustomerUseCase
	log *logger.Logger
}

func NewCustomerHandler(uc CustomerUseCase, log *logger.Logger) *CustomerHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &CustomerHandler{uc: uc, log: log}
}

func (h *CustomerHandler) Register(r fiber.Router) {
	r.Post("/customers", h.CreateCustomer)
	r.Post("/customers/bulk", h.BulkCreateCustomers)
	r.Get("/customers", h.ListCustomers)
	r.Delete("/customers/:name", h.DeleteCustomer)
}

// CreateCustomer godoc
// @Summary Register a customer
// @Description Customer names are unique
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body CreateCustomerRequest true "Customer payload"
// @Success 201 {object} CreateCustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	created, err := h.uc.Create(c.UserContext(), toInput(req))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(CreateCustomerResponse{ID: created.Name})
}

// BulkCreateCustomers godoc
// @Summary Bulk register customers
// @Description Names already registered are reported as duplicates
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body BulkCreateCustomersRequest true "Bulk customer payload"
// @Success 201 {object} BulkCreateCustomersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /customers/bulk [post]
func (h *CustomerHandler) BulkCreateCustomers(c *fiber.Ctx) error {
	var req BulkCreateCustomersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if len(req.Customers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "customers_list_required",
		})
	}

	inputs := make([]usecase.CreateCustomerInput, len(req.Customers))
	for i, cu := range req.Customers {
		inputs[i] = toInput(cu)
	}

	result, err := h.uc.BulkCreate(c.UserContext(), usecase.BulkCreateCustomersInput{Customers: inputs})
	if err != nil {
		return h.fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(BulkCreateCustomersResponse{
		Created:    result.Created,
		Duplicates: result.Duplicates,
	})
}

// ListCustomers godoc
// @Summary List customers
// @Tags Customers
// @Produce json
// @Success 200 {array} CustomerResponse
// @Failure 500 {object} ErrorResponse
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}

	out := make([]CustomerResponse, 0, len(list))
	for _, cu := range list {
		out = append(out, CustomerResponse{
			ID:          cu.Name,
			Name:        cu.Name,
			Address:     optional(cu.Address),
			PhoneNumber: optional(cu.PhoneNumber),
			Email:       optional(cu.Email),
			CreatedAt:   cu.CreatedAt,
		})
	}
	return c.Status(http.StatusOK).JSON(out)
}

// DeleteCustomer godoc
// @Summary Delete a customer
// @Tags Customers
// @Produce json
// @Param name path string true "Customer name"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /customers/{name} [delete]
func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("name")); err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(MessageResponse{Message: "Deleted"})
}

func toInput(r CreateCustomerRequest) usecase.CreateCustomerInput {
	return usecase.CreateCustomerInput{
		Name:        r.Name,
		Address:     r.Address,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
	}
}

func (h *CustomerHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomer):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_customer",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrCustomerExists):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Error:   "already_exists",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	default:
		h.log.Error(c.UserContext(), "customer request failed", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
