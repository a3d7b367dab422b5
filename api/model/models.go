package model

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Topic struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	AuthorID    string  `json:"authorId"`
	Posts       []*Post `json:"posts,omitempty"`
}

type Post struct {
	ID        string `json:"id"`
	TopicID   string `json:"topicId"`
	AuthorID  string `json:"authorId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
	Score     *Score `json:"score,omitempty"`
	Favorites int    `json:"favorites"`
}

type Vote struct {
	ID        string `json:"id"`
	PostID    string `json:"postId"`
	UserID    string `json:"userId,omitempty"`
	Value     int    `json:"value"`
	CreatedAt string `json:"createdAt"`
}

// Score: агрегаты по голосам поста, всегда пересчитываются из набора голосов
type Score struct {
	PostID    string `json:"postId"`
	UpVotes   int    `json:"upVotes"`
	DownVotes int    `json:"downVotes"`
	Points    int    `json:"points"`
}

type Comment struct {
	ID        string `json:"id"`
	PostID    string `json:"postId"`
	AuthorID  string `json:"authorId"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
}

type CommentConnection struct {
	Items      []*Comment `json:"items"`
	HasMore    bool       `json:"hasMore"`
	NextOffset int        `json:"nextOffset"`
}

type Favorite struct {
	ID     string `json:"id"`
	PostID string `json:"postId"`
	UserID string `json:"userId"`
}
