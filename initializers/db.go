package initializers

import (
	log "github.com/sirupsen/logrus"
	"hrms-backend/config"
	"hrms-backend/db"
)

func InitDBConnection() {
	err := db.Connect(config.Conf.Database.Host, config.Conf.Database.Port, config.Conf.Database.Name,
		config.Conf.Database.User, config.Conf.Database.Password,
		*config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		log.WithError(err).Fatal("ошибка подключения к базе")
	}
}
