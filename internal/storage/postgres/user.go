package postgres

import (
	"context"
	"fmt"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/storage"
	"github.com/VitaminP8/bloccit/internal/user"
	"github.com/VitaminP8/bloccit/models"

	"golang.org/x/crypto/bcrypt"
)

type UserPostgresStorage struct{}

func NewUserPostgresStorage() *UserPostgresStorage {
	return &UserPostgresStorage{}
}

func toUser(u *models.User) *model.User {
	return &model.User{
		ID:       fmt.Sprint(u.ID),
		Username: u.Username,
		Email:    u.Email,
	}
}

func (s *UserPostgresStorage) RegisterUser(username, email, password string) (*model.User, error) {
	err := user.ValidateRegistration(username, email, password)
	if err != nil {
		return nil, err
	}

	// проверка - существует ли такой пользователь
	var count int
	err = DB.Model(&models.User{}).Where("username = ? OR email = ?", username, email).Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("could not check user: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("user %s: %w", username, storage.ErrAlreadyExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}

	err = DB.Create(u).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toUser(u), nil
}

func (s *UserPostgresStorage) LoginUser(username, password string) (string, error) {
	var u models.User
	err := DB.Where("username = ?", username).First(&u).Error
	if err != nil {
		return "", fmt.Errorf("user with username %s not found: %w", username, auth.ErrUnauthorized)
	}

	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return "", fmt.Errorf("invalid password or username: %w", auth.ErrUnauthorized)
	}

	return auth.IssueToken(fmt.Sprint(u.ID), u.Username)
}

func (s *UserPostgresStorage) GetUserById(id string) (*model.User, error) {
	uid, err := parseID("user", id)
	if err != nil {
		return nil, err
	}

	var u models.User
	err = DB.First(&u, uid).Error
	if err != nil {
		return nil, notFound("user", id, err)
	}

	return toUser(&u), nil
}

func (s *UserPostgresStorage) GetAllUsers() ([]*model.User, error) {
	var users []models.User
	err := DB.Order("id asc").Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("could not get users: %w", err)
	}

	results := make([]*model.User, 0, len(users))
	for i := range users {
		results = append(results, toUser(&users[i]))
	}

	return results, nil
}

// loadOwnAccount находит пользователя id и проверяет, что это текущий пользователь
func loadOwnAccount(ctx context.Context, id string) (*models.User, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	uid, err := parseID("user", id)
	if err != nil {
		return nil, err
	}

	var u models.User
	err = DB.First(&u, uid).Error
	if err != nil {
		return nil, notFound("user", id, err)
	}

	if fmt.Sprint(u.ID) != userID {
		return nil, fmt.Errorf("not your account: %w", auth.ErrForbidden)
	}

	return &u, nil
}

func (s *UserPostgresStorage) UpdateUser(ctx context.Context, id, username, email string) (*model.User, error) {
	err := user.ValidateProfile(username, email)
	if err != nil {
		return nil, err
	}

	u, err := loadOwnAccount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}

	updates := map[string]interface{}{}
	if username != "" && username != u.Username {
		updates["username"] = username
	}
	if email != "" && email != u.Email {
		updates["email"] = email
	}
	if len(updates) == 0 {
		return toUser(u), nil
	}

	var count int
	err = DB.Model(&models.User{}).
		Where("id <> ? AND (username = ? OR email = ?)", u.ID, username, email).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("could not check user: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("username or email: %w", storage.ErrAlreadyExists)
	}

	err = DB.Model(u).Updates(updates).Error
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}

	return toUser(u), nil
}

func (s *UserPostgresStorage) DeleteUserById(ctx context.Context, id string) error {
	u, err := loadOwnAccount(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}

	err = DB.Unscoped().Delete(u).Error
	if err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}

	return nil
}
