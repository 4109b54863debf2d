package handlers

import (
	"log"
	"net/http"

	"github.com/VitaminP8/blogery/internal/auth"
	"github.com/VitaminP8/blogery/internal/comment"
	"github.com/VitaminP8/blogery/internal/post"
	"github.com/VitaminP8/blogery/internal/user"
)

// Routes собирает роутер сервиса: таблица маршрутов + гейты requireAuth/requireStaff
// поверх общего auth middleware.
func Routes(userStore user.UserStorage, postStore post.PostStorage, commentStore comment.CommentStorage, logger *log.Logger) http.Handler {
	postHandler := NewPostHandler(postStore, logger)
	commentHandler := NewCommentHandler(commentStore, logger)
	authHandler := NewAuthHandler(userStore, logger)

	mux := http.NewServeMux()

	// --- Post ---
	mux.Handle("GET /posts/{$}", auth.RequireAuth(http.HandlerFunc(postHandler.List)))
	mux.Handle("POST /posts/{$}", auth.RequireAuth(http.HandlerFunc(postHandler.Create)))
	mux.Handle("GET /posts/{id}/{$}", auth.RequireAuth(http.HandlerFunc(postHandler.Get)))
	mux.Handle("PUT /posts/{id}/{$}", auth.RequireAuth(http.HandlerFunc(postHandler.Update)))
	mux.Handle("DELETE /posts/{id}/{$}", auth.RequireAuth(http.HandlerFunc(postHandler.Delete)))

	// --- Comment ---
	mux.Handle("GET /comments/{$}", auth.RequireAuth(http.HandlerFunc(commentHandler.List)))
	mux.Handle("POST /comments/{$}", auth.RequireAuth(http.HandlerFunc(commentHandler.Create)))
	mux.Handle("GET /comments/{id}/{$}", auth.RequireAuth(http.HandlerFunc(commentHandler.Get)))
	mux.Handle("PUT /comments/{id}/{$}", auth.RequireAuth(http.HandlerFunc(commentHandler.Update)))
	mux.Handle("DELETE /comments/{id}/{$}", auth.RequireAuth(http.HandlerFunc(commentHandler.Delete)))

	// --- Auth ---
	mux.Handle("POST /register/{$}", http.HandlerFunc(authHandler.Register))
	mux.Handle("POST /login/{$}", http.HandlerFunc(authHandler.Login))
	mux.Handle("POST /token/refresh/{$}", http.HandlerFunc(authHandler.Refresh))
	mux.Handle("GET /admin-only/{$}", auth.RequireStaff(http.HandlerFunc(authHandler.AdminOnly)))

	return auth.Middleware(userStore)(mux)
}
