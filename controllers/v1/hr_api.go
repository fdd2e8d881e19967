package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hrms-backend/controllers"
	hrhandler "hrms-backend/lib/hr"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	hrapimodels "hrms-backend/models/api/hr"
)

type hrApiController struct {
	controllers.BaseAPIController
}

func InitHrApiRouters(app *fiber.App) {
	controller := hrApiController{}
	app.Route("hr", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.AdminRoleRequired())
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Post("", controller.create)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Реестр рекрутеров
// @Tags Рекрутеры
// @Description Список рекрутеров
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]hrapimodels.HrView}
// @Failure 500 {object} apimodels.Response
// @router /api/hr [get]
func (c *hrApiController) list(ctx *fiber.Ctx) error {
	list, err := hrhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Карточка рекрутера
// @Tags Рекрутеры
// @Description Получение рекрутера по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"идентификатор записи"
// @Success 200 {object} apimodels.Response{data=hrapimodels.HrView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/hr/{id} [get]
func (c *hrApiController) get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	item, err := hrhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Создание рекрутера
// @Tags Рекрутеры
// @Description Добавление рекрутера в реестр
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		hrapimodels.HrData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/hr [post]
func (c *hrApiController) create(ctx *fiber.Ctx) error {
	var payload hrapimodels.HrData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := hrhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление рекрутера
// @Tags Рекрутеры
// @Description Обновление рекрутера в реестре
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"идентификатор записи"
// @Param	body				body		hrapimodels.HrData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/hr/{id} [put]
func (c *hrApiController) update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var payload hrapimodels.HrData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := hrhandler.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessageResponse("рекрутер обновлен"))
}

// @Summary Удаление рекрутера
// @Tags Рекрутеры
// @Description Удаление рекрутера из реестра
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"идентификатор записи"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/hr/{id} [delete]
func (c *hrApiController) delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := hrhandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessageResponse("рекрутер удален"))
}
