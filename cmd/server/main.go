package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VitaminP8/bloccit/api"
	_ "github.com/VitaminP8/bloccit/docs"
	"github.com/VitaminP8/bloccit/internal/config"
	"github.com/VitaminP8/bloccit/internal/storage/memory"
	"github.com/VitaminP8/bloccit/internal/storage/mongodb"
	"github.com/VitaminP8/bloccit/internal/storage/postgres"
	"github.com/VitaminP8/bloccit/internal/subscription"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gopkg.in/tomb.v2"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// загружаем .env из нашего config.go
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	storageType := flag.String("storage", cfg.Storage, "Тип хранилища: memory, postgres или mongo")
	flag.Parse()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	stores, closeStores := openStores(*storageType, cfg)

	scores := subscription.NewScoreManager()
	app := api.NewApp(api.NewHandler(stores, scores), logger.New())

	// Listen блокирует, пока не вызван Shutdown, поэтому запускаем под tomb
	var t tomb.Tomb
	t.Go(func() error {
		log.Printf("Сервер запущен на http://localhost:%s/", cfg.Port)
		return app.Listen(":" + cfg.Port)
	})

	// Ожидание SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case <-t.Dying():
	}

	log.Println("Завершение...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("Ошибка при завершении сервера: %v", err)
	}

	t.Kill(nil)
	if err := t.Wait(); err != nil {
		log.Printf("Ошибка сервера: %v", err)
	}

	closeStores()
	log.Println("Сервер остановлен корректно")
}

// openStores создает хранилища выбранного типа и функцию их закрытия
func openStores(storageType string, cfg config.Config) (api.Stores, func()) {
	switch storageType {
	case "postgres":
		err := postgres.InitDB()
		if err != nil {
			log.Fatalf("failed to init database: %v", err)
		}
		err = postgres.Migrate()
		if err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		log.Println("Используется PostgreSQL хранилище")
		store := postgres.NewStore()
		return api.Stores{
			Users:     store.Users,
			Topics:    store.Topics,
			Posts:     store.Posts,
			Votes:     store.Votes,
			Comments:  store.Comments,
			Favorites: store.Favorites,
		}, func() {
			if err := postgres.CloseDB(); err != nil {
				log.Println(err)
			}
		}

	case "mongo":
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Fatalf("failed to connect to mongo: %v", err)
		}

		log.Println("Используется MongoDB хранилище")
		store := mongodb.NewStore(db)
		return api.Stores{
			Users:     store.Users,
			Topics:    store.Topics,
			Posts:     store.Posts,
			Votes:     store.Votes,
			Comments:  store.Comments,
			Favorites: store.Favorites,
		}, func() {
			if err := db.Close(context.Background()); err != nil {
				log.Println(err)
			}
		}

	case "memory":
		log.Println("Используется in-memory хранилище")
		store := memory.NewStore()
		return api.Stores{
			Users:     store.Users,
			Topics:    store.Topics,
			Posts:     store.Posts,
			Votes:     store.Votes,
			Comments:  store.Comments,
			Favorites: store.Favorites,
		}, func() {}

	default:
		log.Fatalf("неизвестный тип хранилища: %s", storageType)
		return api.Stores{}, nil
	}
}
