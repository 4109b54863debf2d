package models

import "github.com/jinzhu/gorm"

type User struct {
	gorm.Model
	Username string `gorm:"unique"`
	Email    string
	Password string
	IsStaff  bool
	Posts    []Post `gorm:"foreignkey:UserID"`
}

type Post struct {
	gorm.Model
	Title    string
	Content  string
	Category string
	UserID   uint
	Comments []Comment `gorm:"foreignkey:PostID"`
}

type Comment struct {
	gorm.Model
	PostID     uint
	AuthorName string
	Content    string
}
