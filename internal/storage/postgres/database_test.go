package postgres

import (
	"context"
	"testing"

	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/storage"
	"github.com/VitaminP8/bloccit/models"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" // Импортируем драйвер SQLite
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Создает контекст с ID пользователя
func createUserContext(userID string) context.Context {
	return auth.WithUserID(context.Background(), userID)
}

// setupTestDB создает тестовую БД в памяти, выполняет миграции и возвращает
// функцию, которая восстанавливает исходное соединение
func setupTestDB(t *testing.T) func() {
	oldDB := GetDB()

	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err, "Failed to connect to in-memory SQLite")

	// у каждого соединения sqlite :memory: своя база, держим одно
	db.DB().SetMaxOpenConns(1)
	// Отключаем логирование запросов для тестов
	db.LogMode(false)
	InitDBWithConnection(db)

	require.NoError(t, Migrate(), "Failed to migrate database schema")

	return func() {
		db.Close()
		InitDBWithConnection(oldDB)
	}
}

// createTestUser создает тестового пользователя и возвращает его ID
func createTestUser(t *testing.T, username string) uint {
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
	}
	require.NoError(t, DB.Create(user).Error, "Failed to create test user")

	return user.ID
}

// createTestTopic создает тему и возвращает ее ID
func createTestTopic(t *testing.T, userID uint) uint {
	topic := &models.Topic{Name: "General", UserID: userID}
	require.NoError(t, DB.Create(topic).Error, "Failed to create test topic")

	return topic.ID
}

// createTestPost создает тестовый пост и возвращает его ID
func createTestPost(t *testing.T, userID, topicID uint) uint {
	post := &models.Post{
		Title:   "Test Post Title",
		Body:    "This is a test post body long enough",
		UserID:  userID,
		TopicID: topicID,
	}
	require.NoError(t, DB.Create(post).Error, "Failed to create test post")

	return post.ID
}

func TestGetDB(t *testing.T) {
	originalDB := DB

	testDB, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer testDB.Close()

	DB = testDB
	assert.Equal(t, DB, GetDB())

	DB = originalDB
}

func TestInitDBWithConnection(t *testing.T) {
	originalDB := DB

	testDB, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer testDB.Close()

	InitDBWithConnection(testDB)
	assert.Equal(t, testDB, DB)

	DB = originalDB
}

// Тест для проверки поведения CloseDB с NULL-базой данных
func TestCloseDBWithNilDB(t *testing.T) {
	originalDB := DB
	DB = nil

	assert.NoError(t, CloseDB())
	assert.Error(t, Migrate())

	DB = originalDB
}

func TestParseID(t *testing.T) {
	id, err := parseID("post", "42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, bad := range []string{"", "0", "-1", "abc"} {
		_, err := parseID("post", bad)
		assert.ErrorIs(t, err, storage.ErrNotFound, bad)
	}
}

// Примечание: Тесты InitDB с реальным подключением не включены, так как они требуют настоящую PostgreSQL базу данных.
