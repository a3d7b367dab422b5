package postgres

// Store собирает gorm-хранилища; каскад постов выполняется в транзакции
// внутри PostPostgresStorage, поэтому связывать хранилища не нужно
type Store struct {
	Users     *UserPostgresStorage
	Topics    *TopicPostgresStorage
	Posts     *PostPostgresStorage
	Votes     *VotePostgresStorage
	Comments  *CommentPostgresStorage
	Favorites *FavoritePostgresStorage
}

func NewStore() *Store {
	return &Store{
		Users:     NewUserPostgresStorage(),
		Topics:    NewTopicPostgresStorage(),
		Posts:     NewPostPostgresStorage(),
		Votes:     NewVotePostgresStorage(),
		Comments:  NewCommentPostgresStorage(),
		Favorites: NewFavoritePostgresStorage(),
	}
}
