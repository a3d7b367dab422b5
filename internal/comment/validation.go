package comment

import "github.com/VitaminP8/bloccit/internal/validation"

const (
	MaxBodyLength = 2000

	DefaultLimit = 20
	MaxLimit     = 100
)

type draft struct {
	Body string `json:"body" valid:"required~can't be blank,maxstringlength(2000)~is too long (maximum is 2000 characters)"`
}

func Validate(body string) error {
	return validation.Struct(draft{Body: validation.Presence(body)})
}

// NormalizePage приводит limit и offset к допустимым значениям
func NormalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
