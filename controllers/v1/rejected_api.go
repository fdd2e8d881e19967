package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hrms-backend/controllers"
	rejectedhandler "hrms-backend/lib/rejected"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
)

type rejectedApiController struct {
	controllers.BaseAPIController
}

func InitRejectedApiRouters(app *fiber.App) {
	controller := rejectedApiController{}
	app.Route("rejected", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("fetch", controller.fetch)
	})
}

// @Summary Список отказов
// @Tags Отказы
// @Description Снимки кандидатов с терминальными статусами
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]rejectedhandler.RejectedView}
// @Failure 500 {object} apimodels.Response
// @router /api/rejected/fetch [get]
func (c *rejectedApiController) fetch(ctx *fiber.Ctx) error {
	list, err := rejectedhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
