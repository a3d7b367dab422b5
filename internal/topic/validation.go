package topic

import "github.com/VitaminP8/bloccit/internal/validation"

type draft struct {
	Name string `json:"name" valid:"required~can't be blank,minstringlength(3)~is too short (minimum is 3 characters)"`
	User string `json:"user" valid:"required~can't be blank"`
}

func Validate(name, userID string) error {
	return validation.Struct(draft{
		Name: validation.Presence(name),
		User: validation.Presence(userID),
	})
}
