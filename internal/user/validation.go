package user

import (
	"strings"

	"github.com/VitaminP8/bloccit/internal/validation"
)

type registration struct {
	Username string `json:"username" valid:"required~can't be blank,minstringlength(3)~is too short (minimum is 3 characters)"`
	Email    string `json:"email" valid:"required~can't be blank,email~is invalid"`
	Password string `json:"password" valid:"required~can't be blank,minstringlength(6)~is too short (minimum is 6 characters)"`
}

// ValidateRegistration проверяет данные нового пользователя
func ValidateRegistration(username, email, password string) error {
	return validation.Struct(registration{
		Username: validation.Presence(username),
		Email:    validation.Presence(email),
		Password: password,
	})
}

type profile struct {
	Username string `json:"username" valid:"minstringlength(3)~is too short (minimum is 3 characters)"`
	Email    string `json:"email" valid:"email~is invalid"`
}

// ValidateProfile проверяет обновляемые поля; пустые поля не меняются,
// но переданное имя подчиняется тем же правилам, что и при регистрации
func ValidateProfile(username, email string) error {
	err := validation.Struct(profile{
		Username: strings.TrimSpace(username),
		Email:    email,
	})
	if username == "" || !validation.Blank(username) {
		return err
	}

	verr, ok := err.(*validation.Error)
	if !ok {
		if err != nil {
			return err
		}
		verr = &validation.Error{Fields: make(map[string]string)}
	}
	verr.Fields["username"] = "can't be blank"
	return verr
}
