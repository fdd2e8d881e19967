package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hrms-backend/controllers"
	activelisthandler "hrms-backend/lib/activelist"
	"hrms-backend/lib/utils/helpers"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	candidateapimodels "hrms-backend/models/api/candidate"
	"hrms-backend/models"
)

type activeListApiController struct {
	controllers.BaseAPIController
}

func InitActiveListApiRouters(app *fiber.App) {
	controller := activeListApiController{}
	app.Route("activelist", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Put(":email", controller.update)
	})
}

// @Summary Активный список
// @Tags Активный список
// @Description Кандидаты в работе, рекрутер видит только своих
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]activelisthandler.ActiveView}
// @Failure 500 {object} apimodels.Response
// @router /api/activelist [get]
func (c *activeListApiController) list(ctx *fiber.Ctx) error {
	var list []activelisthandler.ActiveView
	var err error
	if middleware.GetUserRole(ctx) == models.UserRoleHr {
		list, err = activelisthandler.Instance.ListByHr(middleware.GetUserEmail(ctx))
	} else {
		list, err = activelisthandler.Instance.List()
	}
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Обновление записи активного списка
// @Tags Активный список
// @Description Обновление кандидата по почте, проходит через движок жизненного цикла
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   email				path		string	true	"почта кандидата"
// @Param	body				body		candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/activelist/{email} [put]
func (c *activeListApiController) update(ctx *fiber.Ctx) error {
	email := ctx.Params("email")
	if !helpers.IsEmailFormat(email) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("некорректная почта кандидата"))
	}
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if payload.ProgressStatus != "" && !payload.ProgressStatus.IsValid() {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("неизвестный статус кандидата"))
	}
	if err := activelisthandler.Instance.UpdateByEmail(email, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessageResponse("запись обновлена"))
}
