package initializers

import (
	log "github.com/sirupsen/logrus"
	"hrms-backend/config"
	"hrms-backend/lib/smtp"
)

func InitSmtp() {
	err := smtp.Connect(config.Conf.Smtp.User, config.Conf.Smtp.Password,
		config.Conf.Smtp.Host, config.Conf.Smtp.Port, *config.Conf.Smtp.TLSEnabled)
	if err != nil {
		log.WithError(err).Fatal("ошибка подключения к smtp")
	}
}
