package authhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hrms-backend/db"
	userstore "hrms-backend/lib/auth/store"
	authutils "hrms-backend/lib/utils/auth-utils"
	initchecker "hrms-backend/lib/utils/init-checker"
	authapimodels "hrms-backend/models/api/auth"
	dbmodels "hrms-backend/models/db"
)

type Provider interface {
	Register(request authapimodels.RegisterRequest) (id string, err error)
	Login(email, password string) (response authapimodels.JWTResponse, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: userstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store userstore.Provider
}

func (i impl) Register(request authapimodels.RegisterRequest) (id string, err error) {
	logger := log.WithField("email", request.Email)
	exist, err := i.store.ExistByEmail(request.Email)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки почты")
		return "", err
	}
	if exist {
		return "", errors.New("пользователь с такой почтой уже зарегистрирован")
	}
	rec := dbmodels.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: authutils.GetMD5Hash(request.Password),
		Role:     request.Role,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания пользователя")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		WithField("role", request.Role).
		Info("зарегистрирован пользователь")
	return id, nil
}

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска пользователя по почте")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("пользователь с такой почтой не найден")
		return authapimodels.JWTResponse{}, errors.New("пользователь с такой почтой не найден")
	}
	if authutils.GetMD5Hash(password) != user.Password {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.JWTResponse{}, errors.New("пользователь не прошел проверку пароля")
	}
	tokenString, err := authutils.GetToken(user.ID, user.Name, user.Email, user.Role)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.JWTResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		logger.WithError(err).Error("ошибка обновления даты последнего входа")
	}
	return authapimodels.JWTResponse{
		Token: tokenString,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}
