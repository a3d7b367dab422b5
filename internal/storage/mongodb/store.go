package mongodb

// Store собирает хранилища поверх одной базы; каскад постов удаляет
// документы зависимых коллекций напрямую
type Store struct {
	DB        *Database
	Users     *UserMongoStorage
	Topics    *TopicMongoStorage
	Posts     *PostMongoStorage
	Votes     *VoteMongoStorage
	Comments  *CommentMongoStorage
	Favorites *FavoriteMongoStorage
}

func NewStore(db *Database) *Store {
	return &Store{
		DB:        db,
		Users:     NewUserMongoStorage(db),
		Topics:    NewTopicMongoStorage(db),
		Posts:     NewPostMongoStorage(db),
		Votes:     NewVoteMongoStorage(db),
		Comments:  NewCommentMongoStorage(db),
		Favorites: NewFavoriteMongoStorage(db),
	}
}
