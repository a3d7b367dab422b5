package post

import "github.com/VitaminP8/bloccit/internal/validation"

const (
	MinTitleLength = 5
	MinBodyLength  = 20
)

// draft: поля поста, которые проверяются до сохранения
type draft struct {
	Title string `json:"title" valid:"required~can't be blank,minstringlength(5)~is too short (minimum is 5 characters)"`
	Body  string `json:"body" valid:"required~can't be blank,minstringlength(20)~is too short (minimum is 20 characters)"`
	User  string `json:"user" valid:"required~can't be blank"`
	Topic string `json:"topic" valid:"required~can't be blank"`
}

// Validate проверяет пост перед созданием или обновлением и возвращает
// *validation.Error с сообщением для каждого невалидного поля.
// Строка из одних пробелов считается отсутствующей.
func Validate(title, body, userID, topicID string) error {
	return validation.Struct(draft{
		Title: validation.Presence(title),
		Body:  validation.Presence(body),
		User:  validation.Presence(userID),
		Topic: validation.Presence(topicID),
	})
}
