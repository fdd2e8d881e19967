package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "hrms-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.Candidate{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Candidate")
	}
	if err := DB.AutoMigrate(&dbmodels.ActiveListEntry{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ActiveListEntry")
	}
	if err := DB.AutoMigrate(&dbmodels.RejectedEntry{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры RejectedEntry")
	}
	if err := DB.AutoMigrate(&dbmodels.Hr{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Hr")
	}
	if err := DB.AutoMigrate(&dbmodels.Vacancy{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Vacancy")
	}
	if err := DB.AutoMigrate(&dbmodels.Assignment{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Assignment")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FileStorage")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
