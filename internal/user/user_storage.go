package user

import (
	"context"

	"github.com/VitaminP8/bloccit/api/model"
)

type UserStorage interface {
	RegisterUser(username, email, password string) (*model.User, error)
	LoginUser(username, password string) (string, error) // JWT
	GetUserById(id string) (*model.User, error)
	GetAllUsers() ([]*model.User, error)
	UpdateUser(ctx context.Context, id, username, email string) (*model.User, error)
	DeleteUserById(ctx context.Context, id string) error
}
