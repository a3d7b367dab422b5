package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/VitaminP8/bloccit/api/model"
	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/storage"
	"github.com/VitaminP8/bloccit/internal/user"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *userDoc) toModel() *model.User {
	return &model.User{
		ID:       d.ID.Hex(),
		Username: d.Username,
		Email:    d.Email,
	}
}

type UserMongoStorage struct {
	db *Database
}

func NewUserMongoStorage(db *Database) *UserMongoStorage {
	return &UserMongoStorage{db: db}
}

func (s *UserMongoStorage) RegisterUser(username, email, password string) (*model.User, error) {
	err := user.ValidateRegistration(username, email, password)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	users := s.db.C(usersCollection)

	n, err := users.CountDocuments(ctx, bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}})
	if err != nil {
		return nil, fmt.Errorf("could not check user: %w", err)
	}
	if n > 0 {
		return nil, fmt.Errorf("user %s: %w", username, storage.ErrAlreadyExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	doc := &userDoc{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Email:     email,
		Password:  string(hashedPassword),
		CreatedAt: time.Now().UTC(),
	}

	_, err = users.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return doc.toModel(), nil
}

func (s *UserMongoStorage) LoginUser(username, password string) (string, error) {
	var doc userDoc
	err := s.db.C(usersCollection).FindOne(context.Background(), bson.M{"username": username}).Decode(&doc)
	if err != nil {
		return "", fmt.Errorf("user with username %s not found: %w", username, auth.ErrUnauthorized)
	}

	err = bcrypt.CompareHashAndPassword([]byte(doc.Password), []byte(password))
	if err != nil {
		return "", fmt.Errorf("invalid password or username: %w", auth.ErrUnauthorized)
	}

	return auth.IssueToken(doc.ID.Hex(), doc.Username)
}

func (s *UserMongoStorage) findUser(ctx context.Context, id string) (*userDoc, error) {
	oid, err := parseID("user", id)
	if err != nil {
		return nil, err
	}

	var doc userDoc
	err = s.db.C(usersCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		return nil, notFound("user", id, err)
	}

	return &doc, nil
}

func (s *UserMongoStorage) GetUserById(id string) (*model.User, error) {
	doc, err := s.findUser(context.Background(), id)
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

func (s *UserMongoStorage) GetAllUsers() ([]*model.User, error) {
	ctx := context.Background()

	csr, err := s.db.C(usersCollection).Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("could not get users: %w", err)
	}

	var docs []userDoc
	err = csr.All(ctx, &docs)
	if err != nil {
		return nil, fmt.Errorf("could not decode users: %w", err)
	}

	results := make([]*model.User, 0, len(docs))
	for i := range docs {
		results = append(results, docs[i].toModel())
	}

	return results, nil
}

// loadOwnAccount находит пользователя id и проверяет, что это текущий пользователь
func (s *UserMongoStorage) loadOwnAccount(ctx context.Context, id string) (*userDoc, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if doc.ID.Hex() != userID {
		return nil, fmt.Errorf("not your account: %w", auth.ErrForbidden)
	}

	return doc, nil
}

func (s *UserMongoStorage) UpdateUser(ctx context.Context, id, username, email string) (*model.User, error) {
	err := user.ValidateProfile(username, email)
	if err != nil {
		return nil, err
	}

	doc, err := s.loadOwnAccount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}

	set := bson.M{}
	var taken bson.A
	if username != "" && username != doc.Username {
		set["username"] = username
		taken = append(taken, bson.M{"username": username})
		doc.Username = username
	}
	if email != "" && email != doc.Email {
		set["email"] = email
		taken = append(taken, bson.M{"email": email})
		doc.Email = email
	}
	if len(set) == 0 {
		return doc.toModel(), nil
	}

	users := s.db.C(usersCollection)

	n, err := users.CountDocuments(ctx, bson.M{
		"_id": bson.M{"$ne": doc.ID},
		"$or": taken,
	})
	if err != nil {
		return nil, fmt.Errorf("could not check user: %w", err)
	}
	if n > 0 {
		return nil, fmt.Errorf("username or email: %w", storage.ErrAlreadyExists)
	}

	_, err = users.UpdateOne(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}

	return doc.toModel(), nil
}

func (s *UserMongoStorage) DeleteUserById(ctx context.Context, id string) error {
	doc, err := s.loadOwnAccount(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}

	_, err = s.db.C(usersCollection).DeleteOne(ctx, bson.M{"_id": doc.ID})
	if err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}

	return nil
}
