package fiber

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"kokko-factory-service/internal/inventory/core/domain"
	"kokko-factory-service/internal/inventory/core/usecase"
	"kokko-factory-service/internal/platform/logger"

	"github.com/gofiber/fiber/v2"
)

type InventoryUseCase interface {
	List(ctx context.Context) ([]domain.StockLevel, error)
	Add(ctx context.Context, in usecase.AddStockInput) error
	SetCount(ctx context.Context, in usecase.SetCountInput) error
	SetThreshold(ctx context.Context, in usecase.SetThresholdInput) error
	Delete(ctx context.Context, key usecase.StockKey) error
}

type InventoryHandler struct {
	uc  InventoryUseCase
	log *logger.Logger
}

func NewInventoryHandler(uc InventoryUseCase, log *logger.Logger) *InventoryHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &InventoryHandler{uc: uc, log: log}
}

func (h *InventoryHandler) Register(r fiber.Router) {
	r.Get("/stock", h.ListStock)
	r.Post("/stock", h.AddStock)
	r.Patch("/stock", h.SetCount)
	r.Patch("/stock/threshold", h.SetThreshold)
	r.Delete("/stock", h.DeleteStock)
}

// ListStock godoc
// @Summary List stock levels
// @Description Items at or below their alert threshold are flagged low
// @Tags Inventory
// @Produce json
// @Success 200 {array} StockResponse
// @Failure 500 {object} ErrorResponse
// @Router /stock [get]
func (h *InventoryHandler) ListStock(c *fiber.Ctx) error {
	levels, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	out := make([]StockResponse, 0, len(levels))
	for _, l := range levels {
		out = append(out, toStockResponse(l))
	}
	return c.Status(http.StatusOK).JSON(out)
}

// AddStock godoc
// @Summary Add stock
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body AddStockRequest true "Delivery"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stock [post]
func (h *InventoryHandler) AddStock(c *fiber.Ctx) error {
	var req AddStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}
	if req.Count == nil {
		return missing(c, "supplier_name, item_name and count are required")
	}

	err := h.uc.Add(c.UserContext(), usecase.AddStockInput{
		StockKey:       usecase.StockKey{SupplierName: req.SupplierName, ItemName: req.ItemName},
		Count:          *req.Count,
		Address:        req.Address,
		PhoneNumber:    req.PhoneNumber,
		Email:          req.Email,
		AlertThreshold: req.AlertThreshold,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusCreated).JSON(MessageResponse{
		Message: fmt.Sprintf("%s stock updated", req.ItemName),
	})
}

// SetCount godoc
// @Summary Overwrite a stock count
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body SetCountRequest true "New count"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stock [patch]
func (h *InventoryHandler) SetCount(c *fiber.Ctx) error {
	var req SetCountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}
	if req.NewCount == nil {
		return missing(c, "supplier_name, item_name and new_count are required")
	}

	err := h.uc.SetCount(c.UserContext(), usecase.SetCountInput{
		StockKey: usecase.StockKey{SupplierName: req.SupplierName, ItemName: req.ItemName},
		Count:    *req.NewCount,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(MessageResponse{Message: "stock count updated"})
}

// SetThreshold godoc
// @Summary Set an item's alert threshold
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body SetThresholdRequest true "New threshold"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stock/threshold [patch]
func (h *InventoryHandler) SetThreshold(c *fiber.Ctx) error {
	var req SetThresholdRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}
	if req.NewThreshold == nil {
		return missing(c, "supplier_name, item_name and new_threshold are required")
	}

	err := h.uc.SetThreshold(c.UserContext(), usecase.SetThresholdInput{
		StockKey:  usecase.StockKey{SupplierName: req.SupplierName, ItemName: req.ItemName},
		Threshold: *req.NewThreshold,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(MessageResponse{
		Message: fmt.Sprintf("%s threshold set to %d", req.ItemName, *req.NewThreshold),
	})
}

// DeleteStock godoc
// @Summary Delete a stock item
// @Description Removes the item and its alert threshold
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body DeleteStockRequest true "Item"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stock [delete]
func (h *InventoryHandler) DeleteStock(c *fiber.Ctx) error {
	var req DeleteStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: "invalid_json"})
	}

	err := h.uc.Delete(c.UserContext(), usecase.StockKey{SupplierName: req.SupplierName, ItemName: req.ItemName})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(MessageResponse{Message: "deleted"})
}

func missing(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_stock",
		Message: msg,
	})
}

func (h *InventoryHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidStock):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_stock",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrStockNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	default:
		h.log.Error(c.UserContext(), "inventory request failed", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
