package handler

import (
	"net/http"

	"quillist/internal/model/requestresponse"
	"quillist/internal/ports"
	"quillist/internal/security"
	"quillist/internal/util"

	"github.com/go-chi/chi/v5"
)

type ReviewHandler struct {
	reviewService ports.ReviewService
}

func NewReviewHandler(reviewService ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService}
}

// AddReview godoc
// @Summary Добавление отзыва к книге
// @Tags Reviews
// @Accept json
// @Produce json
// @Param bookUid path string true "UID книги"
// @Param body body requestresponse.ReviewCreateRequest true "Тело запроса"
// @Success 201 {object} model.Review
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/reviews/book/{bookUid} [post]
func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetCurrentUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", "missing_or_malformed_credential", http.StatusUnauthorized)
		return
	}

	var req requestresponse.ReviewCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	review, err := h.reviewService.AddReview(r.Context(), chi.URLParam(r, "bookUid"), user, req.Rating, req.ReviewText)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, review)
}

// GetReview godoc
// @Summary Отзыв по UID
// @Tags Reviews
// @Produce json
// @Param uid path string true "UID отзыва"
// @Success 200 {object} model.Review
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/reviews/{uid} [get]
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.reviewService.GetReview(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, review)
}

// ListBookReviews godoc
// @Summary Отзывы к книге
// @Tags Reviews
// @Produce json
// @Param bookUid path string true "UID книги"
// @Success 200 {array} model.Review
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/reviews/book/{bookUid} [get]
func (h *ReviewHandler) ListBookReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.ListBookReviews(r.Context(), chi.URLParam(r, "bookUid"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, reviews)
}

// DeleteReview godoc
// @Summary Удаление отзыва
// @Description Удалить отзыв может его автор или админ
// @Tags Reviews
// @Produce json
// @Param uid path string true "UID отзыва"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/reviews/{uid} [delete]
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetCurrentUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", "missing_or_malformed_credential", http.StatusUnauthorized)
		return
	}

	if err := h.reviewService.DeleteReview(r.Context(), chi.URLParam(r, "uid"), user); err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, requestresponse.MessageResponse{Message: "Отзыв удален"})
}
