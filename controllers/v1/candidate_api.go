package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hrms-backend/controllers"
	"hrms-backend/lib/candidate"
	"hrms-backend/lib/dupcheck"
	"hrms-backend/lib/utils/helpers"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	candidateapimodels "hrms-backend/models/api/candidate"
	"hrms-backend/models"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidates", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("search", controller.search)
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Проверка кандидата на дубликат
// @Tags Кандидаты
// @Description Поиск кандидата по почте в отказах, вышедших и активном списке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   email				query		string	true	"почта кандидата"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.SearchResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidates/search [get]
func (c *candidateApiController) search(ctx *fiber.Ctx) error {
	email := ctx.Query("email")
	if !helpers.IsEmailFormat(email) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("некорректная почта кандидата"))
	}
	state, err := dupcheck.Instance.CheckEmail(email)
	if err != nil {
		return c.SendError(ctx, err)
	}
	resp := candidateapimodels.SearchResponse{
		State:   state,
		Message: state.Message(),
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список кандидатов
// @Tags Кандидаты
// @Description Список кандидатов, рекрутер видит только своих
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]candidateapimodels.CandidateView}
// @Failure 500 {object} apimodels.Response
// @router /api/candidates [get]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	var list []candidateapimodels.CandidateView
	var err error
	if middleware.GetUserRole(ctx) == models.UserRoleHr {
		list, err = candidate.Instance.ListByHrMail(middleware.GetUserEmail(ctx))
	} else {
		list, err = candidate.Instance.List()
	}
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание кандидата
// @Tags Кандидаты
// @Description Создание кандидата с проверкой на дубликат
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidates [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if payload.HrMail == "" {
		payload.HrMail = middleware.GetUserEmail(ctx)
		payload.HrName = middleware.GetUserName(ctx)
	}
	id, err := candidate.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Карточка кандидата
// @Tags Кандидаты
// @Description Получение кандидата по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"идентификатор кандидата"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidates/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	item, err := candidate.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Обновление кандидата
// @Tags Кандидаты
// @Description Обновление кандидата, смена статуса синхронизирует активный список и отказы
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"идентификатор кандидата"
// @Param	body				body		candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidates/{id} [put]
func (c *candidateApiController) update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if payload.ProgressStatus != "" && !payload.ProgressStatus.IsValid() {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("неизвестный статус кандидата"))
	}
	if err := candidate.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessageResponse("кандидат обновлен"))
}

// @Summary Удаление кандидата
// @Tags Кандидаты
// @Description Удаление кандидата, снимки отказов сохраняются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"идентификатор кандидата"
// @Success 200 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/candidates/{id} [delete]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if err := candidate.Instance.Delete(id); err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessageResponse("кандидат удален"))
}
