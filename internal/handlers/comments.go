package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/VitaminP8/blogery/api"
	"github.com/VitaminP8/blogery/internal/comment"
	"github.com/VitaminP8/blogery/internal/post"
)

type CommentHandler struct {
	comments comment.CommentStorage
	log      *log.Logger
}

func NewCommentHandler(comments comment.CommentStorage, logger *log.Logger) *CommentHandler {
	return &CommentHandler{comments: comments, log: logger}
}

type commentInput struct {
	Post       uint   `json:"post"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
}

func (in *commentInput) validate() fieldErrors {
	errs := fieldErrors{}
	if in.Post == 0 {
		errs.add("post", requiredMsg)
	}
	// author_name - свободный текст, с пользователями не сверяется
	if in.AuthorName == "" {
		errs.add("author_name", requiredMsg)
	}
	if in.Content == "" {
		errs.add("content", requiredMsg)
	}
	return errs
}

func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.comments.GetAllComments()
	if err != nil {
		h.log.Printf("could not list comments: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	if comments == nil {
		comments = []*api.Comment{}
	}
	writeJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in commentInput
	if !decodeJSON(w, r, &in) {
		return
	}

	if errs := in.validate(); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	c, err := h.comments.CreateComment(in.Post, in.AuthorName, in.Content)
	if err != nil {
		// ссылка на несуществующий пост - ошибка валидации, не 404
		if errors.Is(err, post.ErrPostNotFound) {
			writeValidationErrors(w, fieldErrors{"post": {"Post does not exist."}})
			return
		}
		h.log.Printf("could not create comment: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	c, err := h.comments.GetCommentById(id)
	if err != nil {
		writeNotFound(w)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	// сначала существование записи, потом валидация тела (как get_object_or_404)
	if _, err := h.comments.GetCommentById(id); err != nil {
		writeNotFound(w)
		return
	}

	var in commentInput
	if !decodeJSON(w, r, &in) {
		return
	}

	if errs := in.validate(); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	c, err := h.comments.UpdateComment(id, in.Post, in.AuthorName, in.Content)
	if err != nil {
		if errors.Is(err, comment.ErrCommentNotFound) {
			writeNotFound(w)
			return
		}
		if errors.Is(err, post.ErrPostNotFound) {
			writeValidationErrors(w, fieldErrors{"post": {"Post does not exist."}})
			return
		}
		h.log.Printf("could not update comment %d: %v", id, err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeNotFound(w)
		return
	}

	err := h.comments.DeleteCommentById(id)
	if err != nil {
		writeNotFound(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
