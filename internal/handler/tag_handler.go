package handler

import (
	"net/http"

	"quillist/internal/model/requestresponse"
	"quillist/internal/ports"

	"github.com/go-chi/chi/v5"
)

type TagHandler struct {
	tagService ports.TagService
}

func NewTagHandler(tagService ports.TagService) *TagHandler {
	return &TagHandler{tagService}
}

// ListTags godoc
// @Summary Список тегов
// @Tags Tags
// @Produce json
// @Success 200 {array} model.Tag
// @Security ApiKeyAuth
// @Router /api/v1/tags [get]
func (h *TagHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tagService.ListTags(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, tags)
}

// CreateTag godoc
// @Summary Создание тега
// @Tags Tags
// @Accept json
// @Produce json
// @Param body body requestresponse.TagCreateRequest true "Тело запроса"
// @Success 201 {object} model.Tag
// @Failure 409 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/tags [post]
func (h *TagHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.TagCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	tag, err := h.tagService.CreateTag(r.Context(), req.Name)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, tag)
}

// UpdateTag godoc
// @Summary Переименование тега
// @Tags Tags
// @Accept json
// @Produce json
// @Param uid path string true "UID тега"
// @Param body body requestresponse.TagCreateRequest true "Тело запроса"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/tags/{uid} [put]
func (h *TagHandler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.TagCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.tagService.UpdateTag(r.Context(), chi.URLParam(r, "uid"), req.Name); err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, requestresponse.MessageResponse{Message: "Тег обновлен"})
}

// DeleteTag godoc
// @Summary Удаление тега
// @Tags Tags
// @Produce json
// @Param uid path string true "UID тега"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/tags/{uid} [delete]
func (h *TagHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	if err := h.tagService.DeleteTag(r.Context(), chi.URLParam(r, "uid")); err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, requestresponse.MessageResponse{Message: "Тег удален"})
}

// AddTagsToBook godoc
// @Summary Привязка тегов к книге
// @Description Отсутствующие теги создаются, затем привязываются к книге
// @Tags Tags
// @Accept json
// @Produce json
// @Param bookUid path string true "UID книги"
// @Param body body requestresponse.AddTagsRequest true "Тело запроса"
// @Success 200 {array} model.Tag
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/tags/book/{bookUid} [post]
func (h *TagHandler) AddTagsToBook(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.AddTagsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	names := make([]string, 0, len(req.Tags))
	for _, tag := range req.Tags {
		names = append(names, tag.Name)
	}

	tags, err := h.tagService.AddTagsToBook(r.Context(), chi.URLParam(r, "bookUid"), names)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, tags)
}

// ListBookTags godoc
// @Summary Теги книги
// @Tags Tags
// @Produce json
// @Param bookUid path string true "UID книги"
// @Success 200 {array} model.Tag
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/tags/book/{bookUid} [get]
func (h *TagHandler) ListBookTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tagService.ListBookTags(r.Context(), chi.URLParam(r, "bookUid"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, tags)
}
