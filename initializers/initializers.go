package initializers

import (
	"context"

	"hrms-backend/config"
	"hrms-backend/fiberlog"
	activelisthandler "hrms-backend/lib/activelist"
	"hrms-backend/lib/assignment"
	authhandler "hrms-backend/lib/auth"
	"hrms-backend/lib/candidate"
	"hrms-backend/lib/dupcheck"
	xlsexport "hrms-backend/lib/export/xls"
	filestorage "hrms-backend/lib/file-storage"
	hrhandler "hrms-backend/lib/hr"
	rejectedhandler "hrms-backend/lib/rejected"
	"hrms-backend/lib/tracker"
	vacancyhandler "hrms-backend/lib/vacancy"
)

var LoggerConfig *fiberlog.Config

// InitAllServices - порядок имеет значение: сначала инфраструктура,
// потом сервисы, от которых зависят остальные
func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	minioClient := InitS3()
	InitSmtp()
	filestorage.NewHandler(minioClient)
	dupcheck.NewHandler()
	candidate.NewHandler()
	activelisthandler.NewHandler()
	rejectedhandler.NewHandler()
	assignment.NewHandler()
	hrhandler.NewHandler()
	vacancyhandler.NewHandler()
	xlsexport.NewHandler()
	tracker.NewHandler()
	authhandler.NewHandler()
}
