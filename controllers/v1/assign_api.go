package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hrms-backend/controllers"
	"hrms-backend/lib/assignment"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	assignmentapimodels "hrms-backend/models/api/assignment"
	"hrms-backend/models"
)

type assignApiController struct {
	controllers.BaseAPIController
}

func InitAssignApiRouters(app *fiber.App) {
	controller := assignApiController{}
	app.Route("assign-to-hr", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("search", controller.search)
		router.Get("", controller.list)
		router.Use(middleware.AdminRoleRequired())
		router.Post("", controller.assign)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Передача кандидата рекрутеру
// @Tags Назначения
// @Description Админ передает кандидата рекрутеру, рекрутеру уходит уведомление
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		assignmentapimodels.AssignmentData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/assign-to-hr [post]
func (c *assignApiController) assign(ctx *fiber.Ctx) error {
	var payload assignmentapimodels.AssignmentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := assignment.Instance.Assign(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список назначений
// @Tags Назначения
// @Description Переданные кандидаты, рекрутер видит только своих
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]assignmentapimodels.AssignmentView}
// @Failure 500 {object} apimodels.Response
// @router /api/assign-to-hr [get]
func (c *assignApiController) list(ctx *fiber.Ctx) error {
	var list []assignmentapimodels.AssignmentView
	var err error
	if middleware.GetUserRole(ctx) == models.UserRoleHr {
		list, err = assignment.Instance.ListByHr(middleware.GetUserEmail(ctx))
	} else {
		list, err = assignment.Instance.ListAll()
	}
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Поиск назначений
// @Tags Назначения
// @Description Поиск по почте кандидата или телефону
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   candidate_email		query		string	false	"почта кандидата"
// @Param   contact_number		query		string	false	"телефон кандидата"
// @Success 200 {object} apimodels.Response{data=[]assignmentapimodels.AssignmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/assign-to-hr/search [get]
func (c *assignApiController) search(ctx *fiber.Ctx) error {
	var filter assignmentapimodels.SearchFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить параметры запроса"))
	}
	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := assignment.Instance.Search(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Удаление назначения
// @Tags Назначения
// @Description Удаление назначения после фиксации кандидата рекрутером
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"идентификатор назначения"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/assign-to-hr/{id} [delete]
func (c *assignApiController) delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := assignment.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessageResponse("назначение удалено"))
}
