package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"hrms-backend/controllers"
	filestorage "hrms-backend/lib/file-storage"
	"hrms-backend/lib/utils/helpers"
	"hrms-backend/middleware"
	apimodels "hrms-backend/models/api"
)

type uploadApiController struct {
	controllers.BaseAPIController
}

func InitUploadApiRouters(app *fiber.App) {
	controller := uploadApiController{}
	app.Route("uploads", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("", controller.upload)
		router.Get("resume/:email", controller.resume)
		router.Get(":id", controller.download)
	})
}

// @Summary Загрузка резюме
// @Tags Файлы
// @Description Загрузка резюме кандидата, в ответе идентификатор файла
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   candidate_email		formData	string	true	"почта кандидата"
// @Param   file				formData	file	true	"файл резюме"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/uploads [post]
func (c *uploadApiController) upload(ctx *fiber.Ctx) error {
	ownerEmail := ctx.FormValue("candidate_email")
	if !helpers.IsEmailFormat(ownerEmail) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("некорректная почта кандидата"))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить файл из запроса"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось прочитать файл из запроса"))
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось прочитать файл из запроса"))
	}
	contentType := fileHeader.Header.Get("Content-Type")
	fileID, err := filestorage.Instance.UploadResume(ctx.Context(), ownerEmail, fileHeader.Filename, contentType, data)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fileID))
}

// @Summary Резюме кандидата
// @Tags Файлы
// @Description Скачивание последнего загруженного резюме по почте кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   email				path		string	true	"почта кандидата"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/uploads/resume/{email} [get]
func (c *uploadApiController) resume(ctx *fiber.Ctx) error {
	email := ctx.Params("email")
	if !helpers.IsEmailFormat(email) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("некорректная почта кандидата"))
	}
	file, rec, err := filestorage.Instance.GetResume(ctx.Context(), email)
	if err != nil {
		return c.SendError(ctx, err)
	}
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("резюме не найдено"))
	}
	ctx.Set("Content-Type", rec.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rec.Name+`"`)
	return ctx.Send(file)
}

// @Summary Скачивание файла
// @Tags Файлы
// @Description Скачивание ранее загруженного файла по идентификатору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id					path		string	true	"идентификатор файла"
// @Success 200
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/uploads/{id} [get]
func (c *uploadApiController) download(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	file, rec, err := filestorage.Instance.GetFile(ctx.Context(), id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("файл не найден"))
	}
	ctx.Set("Content-Type", rec.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rec.Name+`"`)
	return ctx.Send(file)
}
