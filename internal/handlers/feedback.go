package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vaughan-dsouza/feedback/internal/models"
	"github.com/vaughan-dsouza/feedback/internal/services"
	"github.com/vaughan-dsouza/feedback/internal/utils"
)

type FeedbackHandler struct {
	Feedback FeedbackService
}

func NewFeedbackHandler(feedback FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{Feedback: feedback}
}

// ---------------------- CREATE ----------------------

func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	content, ok := utils.FormValue(w, r, "content")
	if !ok {
		return
	}

	f, err := h.Feedback.Create(r.Context(), user, content)
	if err != nil {
		utils.Error(w, r, err)
		return
	}

	utils.JSON(w, http.StatusCreated, f)
}

// ---------------------- LIST ----------------------

func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	skip, ok := queryInt(w, r, "skip", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit", services.DefaultPageSize)
	if !ok {
		return
	}

	feedbacks, err := h.Feedback.List(r.Context(), user, skip, limit)
	if err != nil {
		utils.Error(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, feedbacks)
}

// ---------------------- GET ONE ----------------------

func (h *FeedbackHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	f, err := h.Feedback.Get(r.Context(), user, id)
	if err != nil {
		utils.Error(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, f)
}

// ---------------------- UPDATE ----------------------

func (h *FeedbackHandler) UpdateFeedback(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var body struct {
		Content *string `json:"content"`
	}
	if err := utils.DecodeJSON(w, r, &body); err != nil {
		return
	}

	f, err := h.Feedback.Update(r.Context(), user, id, services.FeedbackUpdate{Content: body.Content})
	if err != nil {
		utils.Error(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, f)
}

// ---------------------- DELETE ----------------------

func (h *FeedbackHandler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Feedback.Delete(r.Context(), user, id); err != nil {
		utils.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ---------------------- helpers ----------------------

func currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	u, ok := utils.UserFromContext(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "Not authenticated")
		return nil, false
	}
	return u, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.JSONError(w, http.StatusUnprocessableEntity, "id must be an integer")
		return 0, false
	}
	return id, true
}

func queryInt(w http.ResponseWriter, r *http.Request, key string, def int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		utils.JSONError(w, http.StatusUnprocessableEntity, key+" must be an integer")
		return 0, false
	}
	return v, true
}
