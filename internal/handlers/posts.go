package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/VitaminP8/blogery/api"
	"github.com/VitaminP8/blogery/internal/post"
)

type PostHandler struct {
	posts post.PostStorage
	log   *log.Logger
}

func NewPostHandler(posts post.PostStorage, logger *log.Logger) *PostHandler {
	return &PostHandler{posts: posts, log: logger}
}

type postInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Author   uint   `json:"author"`
	Category string `json:"category"`
}

// все поля обязательны - PUT это полная замена записи, не частичное обновление
func (in *postInput) validate() fieldErrors {
	errs := fieldErrors{}
	if in.Title == "" {
		errs.add("title", requiredMsg)
	}
	if in.Content == "" {
		errs.add("content", requiredMsg)
	}
	if in.Author == 0 {
		errs.add("author", requiredMsg)
	}
	if in.Category == "" {
		errs.add("category", requiredMsg)
	}
	return errs
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.GetAllPosts()
	if err != nil {
		h.log.Printf("could not list posts: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	if posts == nil {
		posts = []*api.Post{}
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in postInput
	if !decodeJSON(w, r, &in) {
		return
	}

	if errs := in.validate(); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	p, err := h.posts.CreatePost(in.Title, in.Content, in.Author, in.Category)
	if err != nil {
		if errors.Is(err, post.ErrAuthorNotFound) {
			writeValidationErrors(w, fieldErrors{"author": {"Author does not exist."}})
			return
		}
		h.log.Printf("could not create post: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	p, err := h.posts.GetPostById(id)
	if err != nil {
		writeNotFound(w)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	// сначала существование записи, потом валидация тела (как get_object_or_404)
	if _, err := h.posts.GetPostById(id); err != nil {
		writeNotFound(w)
		return
	}

	var in postInput
	if !decodeJSON(w, r, &in) {
		return
	}

	// валидация до записи - при ошибке ничего не мутируется
	if errs := in.validate(); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	p, err := h.posts.UpdatePost(id, in.Title, in.Content, in.Author, in.Category)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			writeNotFound(w)
			return
		}
		if errors.Is(err, post.ErrAuthorNotFound) {
			writeValidationErrors(w, fieldErrors{"author": {"Author does not exist."}})
			return
		}
		h.log.Printf("could not update post %d: %v", id, err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	err := h.posts.DeletePostById(id)
	if err != nil {
		writeNotFound(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
