package models

import "github.com/jinzhu/gorm"

type User struct {
	gorm.Model
	Username  string `gorm:"unique"`
	Email     string `gorm:"unique"`
	Password  string
	Posts     []Post     `gorm:"foreignkey:UserID"`
	Comments  []Comment  `gorm:"foreignkey:UserID"`
	Favorites []Favorite `gorm:"foreignkey:UserID"`
}

type Topic struct {
	gorm.Model
	Name        string
	Description string
	UserID      uint
	Posts       []Post `gorm:"foreignkey:TopicID"`
}

// Post владеет голосами, комментариями и избранным (удаляются вместе с постом)
type Post struct {
	gorm.Model
	Title     string
	Body      string
	UserID    uint
	TopicID   uint       `gorm:"index"`
	Votes     []Vote     `gorm:"foreignkey:PostID"`
	Comments  []Comment  `gorm:"foreignkey:PostID"`
	Favorites []Favorite `gorm:"foreignkey:PostID"`
}

type Vote struct {
	gorm.Model
	Value  int
	PostID uint `gorm:"index"`
	UserID *uint
}

type Comment struct {
	gorm.Model
	Body   string
	PostID uint `gorm:"index"`
	UserID uint
}

type Favorite struct {
	gorm.Model
	PostID uint `gorm:"unique_index:idx_favorite_user_post"`
	UserID uint `gorm:"unique_index:idx_favorite_user_post"`
}
