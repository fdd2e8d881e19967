package models

type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleHr    UserRole = "HR"
)

var roleHumanName = map[UserRole]string{
	UserRoleAdmin: "Администратор",
	UserRoleHr:    "Рекрутер",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin || r == UserRoleHr
}
