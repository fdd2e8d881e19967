package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	log "github.com/sirupsen/logrus"
	s3client "hrms-backend/s3"
)

func InitS3() *minio.Client {
	client, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Fatal("ошибка подключения к s3")
	}
	if err = s3client.MakeBucket(context.Background(), client); err != nil {
		log.WithError(err).Fatal("ошибка создания бакета в s3")
	}
	return client
}
