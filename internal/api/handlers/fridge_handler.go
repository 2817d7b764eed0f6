package handlers

import (
	"strconv"

	"Smart-Fridge-Manager/domain"
	"Smart-Fridge-Manager/internal/api/presenters"
	"Smart-Fridge-Manager/pkg/fridge"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FridgeHandler interface {
		AddFridgeItem(c *fiber.Ctx) error
		UpdateFridgeItem(c *fiber.Ctx) error
		DeleteFridgeItem(c *fiber.Ctx) error
		GetFridgeItems(c *fiber.Ctx) error
		GetFridgeItemDetails(c *fiber.Ctx) error
		GetExpiringItems(c *fiber.Ctx) error
		MarkAsConsumed(c *fiber.Ctx) error
		UploadItemImage(c *fiber.Ctx) error
		GetFridgeStats(c *fiber.Ctx) error
	}

	fridgeHandler struct {
		fridgeService fridge.FridgeService
		validator     *validator.Validate
	}
)

func NewFridgeHandler(fridgeService fridge.FridgeService, validator *validator.Validate) FridgeHandler {
	return &fridgeHandler{
		fridgeService: fridgeService,
		validator:     validator,
	}
}

func (h *fridgeHandler) AddFridgeItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddFridgeItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFridgeItem, err)
	}

	res, err := h.fridgeService.AddFridgeItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFridgeItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFridgeItem)
}

func (h *fridgeHandler) UpdateFridgeItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.UpdateFridgeItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFridgeItem, err)
	}

	if err := h.fridgeService.UpdateFridgeItem(c.Context(), itemID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFridgeItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateFridgeItem)
}

func (h *fridgeHandler) DeleteFridgeItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.fridgeService.DeleteFridgeItem(c.Context(), itemID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFridgeItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFridgeItem)
}

func (h *fridgeHandler) GetFridgeItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	category := c.Query("category", "all")
	location := c.Query("location", "all")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	items, count, err := h.fridgeService.GetFridgeItems(c.Context(), userID, category, location, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFridgeItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetFridgeItems)
}

func (h *fridgeHandler) GetFridgeItemDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	item, err := h.fridgeService.GetFridgeItemByID(c.Context(), itemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFridgeItems, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetFridgeItems)
}

func (h *fridgeHandler) GetExpiringItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	days, err := strconv.Atoi(c.Query("days", "3"))
	if err != nil || days < 1 {
		days = 3
	}

	items, err := h.fridgeService.GetExpiringItems(c.Context(), userID, days)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetExpiringItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetExpiringItems)
}

func (h *fridgeHandler) MarkAsConsumed(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.fridgeService.MarkAsConsumed(c.Context(), itemID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkAsConsumed, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkAsConsumed)
}

func (h *fridgeHandler) UploadItemImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadItemImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadItemImage, err)
	}

	imageURL, err := h.fridgeService.UploadItemImage(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadItemImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"image_url": imageURL}, fiber.StatusOK, domain.MessageSuccessUploadItemImage)
}

func (h *fridgeHandler) GetFridgeStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats, err := h.fridgeService.GetFridgeStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFridgeStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetFridgeStats)
}
