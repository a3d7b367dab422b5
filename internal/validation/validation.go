package validation

import (
	"errors"
	"sort"
	"strings"

	"github.com/asaskevich/govalidator"
)

// Error содержит по одному сообщению на каждое невалидное поле
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Struct проверяет структуру по тегам `valid:""` и собирает ошибки по полям.
// Имена полей приводятся к нижнему регистру.
func Struct(v interface{}) error {
	ok, err := govalidator.ValidateStruct(v)
	if ok && err == nil {
		return nil
	}

	verr := &Error{Fields: make(map[string]string)}
	collect(verr, err)
	if len(verr.Fields) == 0 {
		if err != nil {
			return err
		}
		return errors.New("validation failed")
	}
	return verr
}

func collect(verr *Error, err error) {
	switch e := err.(type) {
	case govalidator.Errors:
		for _, inner := range e.Errors() {
			collect(verr, inner)
		}
	case govalidator.Error:
		verr.Fields[strings.ToLower(e.Name)] = e.Err.Error()
	}
}

// Blank сообщает, пуста ли строка после удаления пробелов
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Presence возвращает пустую строку вместо строки из одних пробелов,
// чтобы правило required отклоняло такие значения
func Presence(s string) string {
	if Blank(s) {
		return ""
	}
	return s
}
