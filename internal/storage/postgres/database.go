package postgres

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/VitaminP8/bloccit/internal/config"
	"github.com/VitaminP8/bloccit/internal/storage"
	"github.com/VitaminP8/bloccit/models"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
)

var DB *gorm.DB

// GetDB возвращает глобальную переменную DB (для тестирования)
func GetDB() *gorm.DB {
	return DB
}

// InitDB подключается к базе данных PostgreSQL и устанавливает глобальную переменную DB
func InitDB() error {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.GetEnv("DB_HOST"),
		config.GetEnv("DB_USER"),
		config.GetEnv("DB_PASSWORD"),
		config.GetEnv("DB_NAME"),
		config.GetEnv("DB_PORT"),
		config.GetEnv("DB_SSLMODE"),
	)

	db, err := gorm.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to the database: %v", err)
	}

	DB = db
	log.Println("Successfully connected to the database.")
	return nil
}

// Migrate создает или обновляет таблицы всех моделей
func Migrate() error {
	if DB == nil {
		return errors.New("database is not initialized")
	}

	err := DB.AutoMigrate(
		&models.User{},
		&models.Topic{},
		&models.Post{},
		&models.Vote{},
		&models.Comment{},
		&models.Favorite{},
	).Error
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// CloseDB закрывает соединение с базой данных
func CloseDB() error {
	if DB == nil {
		return nil
	}

	err := DB.Close()
	if err != nil {
		return fmt.Errorf("failed to close the database connection: %v", err)
	}

	log.Println("Database connection closed.")
	return nil
}

// InitDBWithConnection для тестирования (позволяет инъекцию соединения БД)
func InitDBWithConnection(db *gorm.DB) {
	DB = db
}

// parseID переводит строковый ID из API в первичный ключ
func parseID(kind, id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%s %q: %w", kind, id, storage.ErrNotFound)
	}
	return uint(n), nil
}

// notFound оборачивает gorm.ErrRecordNotFound в storage.ErrNotFound
func notFound(kind, id string, err error) error {
	if gorm.IsRecordNotFoundError(err) {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}
	return fmt.Errorf("could not get %s %s: %w", kind, id, err)
}
