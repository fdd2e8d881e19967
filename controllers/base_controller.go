package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	apimodels "hrms-backend/models/api"
	"hrms-backend/models"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

// SendError - доменная ошибка в http-статус: дубликат это конфликт,
// отсутствие записи - 404, все остальное внутренняя ошибка
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	var dupCandidate models.DuplicateCandidateError
	if errors.As(err, &dupCandidate) {
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	}
	var dupAssignment models.DuplicateAssignmentError
	if errors.As(err, &dupAssignment) {
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	}
	if errors.As(err, &models.NotFoundError{}) {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
}
