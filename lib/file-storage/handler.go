package filestorage

import (
	"bytes"
	"context"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hrms-backend/config"
	"hrms-backend/db"
	filesdbstorage "hrms-backend/lib/file-storage/store"
	initchecker "hrms-backend/lib/utils/init-checker"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	UploadResume(ctx context.Context, ownerEmail, fileName, contentType string, file []byte) (fileID string, err error)
	GetFile(ctx context.Context, fileID string) (file []byte, rec *dbmodels.FileStorage, err error)
	GetResume(ctx context.Context, ownerEmail string) (file []byte, rec *dbmodels.FileStorage, err error)
}

var Instance Provider

func NewHandler(s3client *minio.Client) {
	instance := impl{
		s3client: s3client,
		store:    filesdbstorage.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"s3client", instance.s3client,
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	s3client *minio.Client
	store    filesdbstorage.Provider
}

// UploadResume - резюме кладем в s3 под новым uuid и пишем запись в базу.
// Идентификатор записи совпадает с ключом объекта
func (i impl) UploadResume(ctx context.Context, ownerEmail, fileName, contentType string, file []byte) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	rec := dbmodels.FileStorage{
		BaseModel:   dbmodels.BaseModel{ID: uuid.NewString()},
		Name:        fileName,
		OwnerEmail:  ownerEmail,
		Type:        dbmodels.CandidateResume,
		ContentType: contentType,
	}
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, rec.ID,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки файла в s3")
	}
	fileID, err := i.store.SaveFile(rec)
	if err != nil {
		log.
			WithField("owner_email", ownerEmail).
			WithField("file_id", rec.ID).
			WithError(err).
			Error("файл загружен в s3, но запись в базе не сохранена")
		return "", errors.Wrap(err, "ошибка сохранения записи о файле")
	}
	return fileID, nil
}

func (i impl) GetFile(ctx context.Context, fileID string) ([]byte, *dbmodels.FileStorage, error) {
	rec, err := i.store.GetByID(fileID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, nil
	}
	file, err := i.readObject(ctx, rec.ID)
	if err != nil {
		return nil, nil, err
	}
	return file, rec, nil
}

func (i impl) GetResume(ctx context.Context, ownerEmail string) ([]byte, *dbmodels.FileStorage, error) {
	fileID, err := i.store.GetResumeID(ownerEmail)
	if err != nil {
		return nil, nil, err
	}
	if fileID == "" {
		return nil, nil, nil
	}
	return i.GetFile(ctx, fileID)
}

func (i impl) readObject(ctx context.Context, objectID string) ([]byte, error) {
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, objectID, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла из s3")
	}
	defer object.Close()
	var buf bytes.Buffer
	if _, err = buf.ReadFrom(object); err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла из s3")
	}
	return buf.Bytes(), nil
}
