package handlers

import (
	"Smart-Fridge-Manager/domain"
	"Smart-Fridge-Manager/internal/api/presenters"
	"Smart-Fridge-Manager/pkg/detection"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DetectionHandler interface {
		DetectIngredients(c *fiber.Ctx) error
		GetPendingDetections(c *fiber.Ctx) error
		ConfirmDetection(c *fiber.Ctx) error
		GetFoodInfo(c *fiber.Ctx) error
	}

	detectionHandler struct {
		detectionService detection.DetectionService
		validator        *validator.Validate
	}
)

func NewDetectionHandler(detectionService detection.DetectionService, validator *validator.Validate) DetectionHandler {
	return &detectionHandler{
		detectionService: detectionService,
		validator:        validator,
	}
}

func (h *detectionHandler) DetectIngredients(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.DetectIngredientsRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDetectIngredients, err)
	}

	res, err := h.detectionService.DetectIngredients(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDetectIngredients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDetectIngredients)
}

func (h *detectionHandler) GetPendingDetections(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.detectionService.GetPendingDetections(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPendingScans, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPendingScans)
}

func (h *detectionHandler) ConfirmDetection(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ConfirmDetectionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConfirmDetection, err)
	}

	res, err := h.detectionService.ConfirmDetection(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConfirmDetection, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessConfirmDetection)
}

func (h *detectionHandler) GetFoodInfo(c *fiber.Ctx) error {
	foodName := c.Query("name")
	if foodName == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodInfo, nil)
	}

	res, err := h.detectionService.GetFoodInfo(c.Context(), foodName)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodInfo, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodInfo)
}
