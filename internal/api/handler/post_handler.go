package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"microfeed/internal/api/middleware"
	"microfeed/internal/app/service"
	"microfeed/internal/common"

	"github.com/go-chi/chi/v5"
)

type PostHandler struct {
	postService *service.PostService
	logger      *slog.Logger
}

func NewPostHandler(postService *service.PostService, logger *slog.Logger) *PostHandler {
	return &PostHandler{postService: postService, logger: logger}
}

func (h *PostHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listPosts) // GET /posts

	r.Group(func(protected chi.Router) {
		protected.Use(middleware.Authenticator)
		protected.Post("/", h.createPost)           // POST /posts
		protected.Put("/{postID}", h.updatePost)    // PUT /posts/{id}
		protected.Delete("/{postID}", h.deletePost) // DELETE /posts/{id}
	})
}

func (h *PostHandler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.ListAll(r.Context())
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) createPost(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	post, err := h.postService.Create(r.Context(), identity, req)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) updatePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	postID := chi.URLParam(r, "postID")
	if err := h.postService.Update(r.Context(), identity, postID, req); err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithMessage(w, http.StatusOK, "Post updated successfully")
}

func (h *PostHandler) deletePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	postID := chi.URLParam(r, "postID")
	if err := h.postService.Delete(r.Context(), identity, postID); err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	common.RespondWithMessage(w, http.StatusOK, "Post deleted successfully")
}
