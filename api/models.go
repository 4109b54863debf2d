package api

// Транспортные структуры (JSON как в исходном API).
// Пароль пользователя наружу не отдается никогда.

type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
}

type Post struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID uint   `json:"author"`
	Category string `json:"category"`
}

type Comment struct {
	ID         uint   `json:"id"`
	PostID     uint   `json:"post"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
}

// TokenPair - пара access/refresh токенов, выдается при логине
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
