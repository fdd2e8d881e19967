package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"hrms-backend/models"
)

type LoginRequest struct {
	Email    string `json:"email"`    // Почта пользователя
	Password string `json:"password"` // Пароль
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указана почта")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type RegisterRequest struct {
	Name     string          `json:"name"`     // Имя пользователя
	Email    string          `json:"email"`    // Почта
	Password string          `json:"password"` // Пароль
	Role     models.UserRole `json:"role"`     // Роль (ADMIN/HR)
}

func (r RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("не указано имя")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("не указана почта")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	if !r.Role.IsValid() {
		return errors.New("неизвестная роль")
	}
	return nil
}

type JWTResponse struct {
	Token string          `json:"token"` // JWT
	Name  string          `json:"name"`  // Имя пользователя
	Email string          `json:"email"` // Почта
	Role  models.UserRole `json:"role"`  // Роль
}
