package memory

import "github.com/VitaminP8/bloccit/internal/post"

// Store собирает in-memory хранилища и связывает каскадное удаление тем и постов
type Store struct {
	Users     *UserMemoryStorage
	Topics    *TopicMemoryStorage
	Posts     *PostMemoryStorage
	Votes     *VoteMemoryStorage
	Comments  *CommentMemoryStorage
	Favorites *FavoriteMemoryStorage
}

func NewStore() *Store {
	topics := NewTopicMemoryStorage()
	posts := NewPostMemoryStorage(topics)
	votes := NewVoteMemoryStorage(posts)
	comments := NewCommentMemoryStorage(posts)
	favorites := NewFavoriteMemoryStorage(posts)

	posts.RegisterDependents(
		post.DependentFunc(votes.DeleteVotesByPost),
		post.DependentFunc(comments.DeleteCommentsByPost),
		post.DependentFunc(favorites.DeleteFavoritesByPost),
	)
	topics.RegisterPosts(posts)

	return &Store{
		Users:     NewUserMemoryStorage(),
		Topics:    topics,
		Posts:     posts,
		Votes:     votes,
		Comments:  comments,
		Favorites: favorites,
	}
}
