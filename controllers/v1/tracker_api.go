package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"hrms-backend/controllers"
	"hrms-backend/lib/tracker"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
	trackerapimodels "hrms-backend/models/api/tracker"
	"hrms-backend/models"
)

type trackerApiController struct {
	controllers.BaseAPIController
}

func InitTrackerApiRouters(app *fiber.App) {
	controller := trackerApiController{}
	app.Route("hr-data-tracker", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.AdminRoleRequired())
		router.Get("", controller.tracker)
		router.Get("export/xlsx", controller.exportXlsx)
		router.Get("export/pdf", controller.exportPdf)
	})
}

type trackerResponse struct {
	Rows    []trackerapimodels.TrackerRow  `json:"rows"`    // Строки отчета
	Summary map[models.CandidateStatus]int `json:"summary"` // Кол-во кандидатов по статусам
}

// @Summary Сводный трекер
// @Tags Трекер
// @Description Отчет по кандидатам с фильтрами по статусу, рекрутеру и периоду
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status				query		string	false	"статус кандидата"
// @Param   hr_name				query		string	false	"имя рекрутера"
// @Param   start_date			query		string	false	"начало периода ГГГГ-ММ-ДД"
// @Param   end_date			query		string	false	"конец периода ГГГГ-ММ-ДД, включительно"
// @Success 200 {object} apimodels.Response{data=trackerResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/hr-data-tracker [get]
func (c *trackerApiController) tracker(ctx *fiber.Ctx) error {
	filter, err := c.parseFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rows, err := tracker.Instance.FilteredTracker(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	resp := trackerResponse{
		Rows:    rows,
		Summary: tracker.SummaryCounts(rows),
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Выгрузка трекера в xlsx
// @Tags Трекер
// @Description Выгрузка отчета по кандидатам в xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status				query		string	false	"статус кандидата"
// @Param   hr_name				query		string	false	"имя рекрутера"
// @Param   start_date			query		string	false	"начало периода ГГГГ-ММ-ДД"
// @Param   end_date			query		string	false	"конец периода ГГГГ-ММ-ДД, включительно"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/hr-data-tracker/export/xlsx [get]
func (c *trackerApiController) exportXlsx(ctx *fiber.Ctx) error {
	filter, err := c.parseFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := tracker.Instance.ExportXls(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	fileName := fmt.Sprintf("tracker-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Выгрузка трекера в pdf
// @Tags Трекер
// @Description Выгрузка отчета по кандидатам в pdf со сводкой по статусам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status				query		string	false	"статус кандидата"
// @Param   hr_name				query		string	false	"имя рекрутера"
// @Param   start_date			query		string	false	"начало периода ГГГГ-ММ-ДД"
// @Param   end_date			query		string	false	"конец периода ГГГГ-ММ-ДД, включительно"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/hr-data-tracker/export/pdf [get]
func (c *trackerApiController) exportPdf(ctx *fiber.Ctx) error {
	filter, err := c.parseFilter(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := tracker.Instance.ExportPdf(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	fileName := fmt.Sprintf("tracker-%v.pdf", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(data)
}

func (c *trackerApiController) parseFilter(ctx *fiber.Ctx) (trackerapimodels.TrackerFilter, error) {
	var filter trackerapimodels.TrackerFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return filter, fmt.Errorf("не удалось получить параметры запроса")
	}
	if err := filter.Validate(); err != nil {
		return filter, err
	}
	return filter, nil
}
