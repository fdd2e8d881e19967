package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hrms-backend/controllers"
	"hrms-backend/middleware"
	vacancyhandler "hrms-backend/lib/vacancy"
	apimodels "hrms-backend/models/api"
	vacancyapimodels "hrms-backend/models/api/vacancy"
	"hrms-backend/models"
)

type vacancyApiController struct {
	controllers.BaseAPIController
}

func InitVacancyApiRouters(app *fiber.App) {
	controller := vacancyApiController{}
	app.Route("hrvacancies", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Use(middleware.AdminRoleRequired())
		router.Post("", controller.create)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Список вакансий
// @Tags Вакансии
// @Description Список вакансий, рекрутер видит только назначенные ему
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]vacancyapimodels.VacancyView}
// @Failure 500 {object} apimodels.Response
// @router /api/hrvacancies [get]
func (c *vacancyApiController) list(ctx *fiber.Ctx) error {
	var list []vacancyapimodels.VacancyView
	var err error
	if middleware.GetUserRole(ctx) == models.UserRoleHr {
		list, err = vacancyhandler.Instance.ListByHr(middleware.GetUserEmail(ctx))
	} else {
		list, err = vacancyhandler.Instance.List()
	}
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Карточка вакансии
// @Tags Вакансии
// @Description Получение вакансии по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"идентификатор записи"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.VacancyView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/hrvacancies/{id} [get]
func (c *vacancyApiController) get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	item, err := vacancyhandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Создание вакансии
// @Tags Вакансии
// @Description Публикация вакансии с назначенными рекрутерами
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		vacancyapimodels.VacancyData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/hrvacancies [post]
func (c *vacancyApiController) create(ctx *fiber.Ctx) error {
	var payload vacancyapimodels.VacancyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := vacancyhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Удаление вакансии
// @Tags Вакансии
// @Description Снятие вакансии с публикации
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"идентификатор записи"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/hrvacancies/{id} [delete]
func (c *vacancyApiController) delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := vacancyhandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessageResponse("вакансия удалена"))
}
