package api

import (
	"github.com/VitaminP8/bloccit/internal/auth"
	"github.com/VitaminP8/bloccit/internal/comment"
	"github.com/VitaminP8/bloccit/internal/favorite"
	"github.com/VitaminP8/bloccit/internal/post"
	"github.com/VitaminP8/bloccit/internal/subscription"
	"github.com/VitaminP8/bloccit/internal/topic"
	"github.com/VitaminP8/bloccit/internal/user"
	"github.com/VitaminP8/bloccit/internal/vote"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// Stores: хранилища одного бэкенда (memory, postgres или mongo)
type Stores struct {
	Users     user.UserStorage
	Topics    topic.TopicStorage
	Posts     post.PostStorage
	Votes     vote.VoteStorage
	Comments  comment.CommentStorage
	Favorites favorite.FavoriteStorage
}

type Handler struct {
	users     user.UserStorage
	topics    topic.TopicStorage
	posts     post.PostStorage
	comments  comment.CommentStorage
	favorites favorite.FavoriteStorage
	ledger    *vote.Ledger
	scores    subscription.Manager
}

func NewHandler(stores Stores, scores subscription.Manager) *Handler {
	return &Handler{
		users:     stores.Users,
		topics:    stores.Topics,
		posts:     stores.Posts,
		comments:  stores.Comments,
		favorites: stores.Favorites,
		ledger:    vote.NewLedger(stores.Votes, scores),
		scores:    scores,
	}
}

// NewApp создает fiber-приложение с обработкой ошибок, JWT и всеми маршрутами
func NewApp(h *Handler, handlers ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "bloccit",
		ErrorHandler: ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	for _, handler := range handlers {
		app.Use(handler)
	}
	app.Use(auth.Middleware())

	app.Get("/docs/*", swagger.HandlerDefault)

	h.Register(app)
	return app
}

func (h *Handler) Register(r fiber.Router) {
	requireAuth := auth.RequireAuth()

	r.Get("/", h.index)
	r.Get("/about", h.about)

	r.Post("/users/sign_up", h.signUp)
	r.Post("/users/sign_in", h.signIn)
	r.Get("/users", h.listUsers)
	r.Post("/users", h.signUp)
	r.Get("/users/:id", h.showUser)
	r.Patch("/users/:id", requireAuth, h.updateUser)
	r.Put("/users/:id", requireAuth, h.updateUser)
	r.Delete("/users/:id", requireAuth, h.deleteUser)

	r.Get("/topics", h.listTopics)
	r.Post("/topics", requireAuth, h.createTopic)
	r.Get("/topics/:id", h.showTopic)
	r.Patch("/topics/:id", requireAuth, h.updateTopic)
	r.Put("/topics/:id", requireAuth, h.updateTopic)
	r.Delete("/topics/:id", requireAuth, h.deleteTopic)

	// посты доступны только внутри темы
	posts := r.Group("/topics/:topic_id/posts")
	posts.Post("/", requireAuth, h.createPost)
	posts.Get("/:post_id", h.showPost)
	posts.Patch("/:post_id", requireAuth, h.updatePost)
	posts.Put("/:post_id", requireAuth, h.updatePost)
	posts.Delete("/:post_id", requireAuth, h.deletePost)

	posts.Get("/:post_id/score", h.showScore)
	posts.Get("/:post_id/score/stream", h.streamScore)
	posts.Post("/:post_id/votes", requireAuth, h.castVote)
	posts.Post("/:post_id/up-vote", requireAuth, h.upVote)
	posts.Post("/:post_id/down-vote", requireAuth, h.downVote)

	posts.Get("/:post_id/comments", h.listComments)
	posts.Post("/:post_id/comments", requireAuth, h.createComment)

	posts.Post("/:post_id/favorite", requireAuth, h.createFavorite)
	posts.Delete("/:post_id/favorite", requireAuth, h.deleteFavorite)
}
