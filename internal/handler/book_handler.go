package handler

import (
	"net/http"
	"time"

	"quillist/internal/model"
	"quillist/internal/model/requestresponse"
	"quillist/internal/ports"
	"quillist/internal/security"
	"quillist/internal/util"

	"github.com/go-chi/chi/v5"
)

type BookHandler struct {
	bookService ports.BookService
}

func NewBookHandler(bookService ports.BookService) *BookHandler {
	return &BookHandler{bookService}
}

// ListBooks godoc
// @Summary Список книг
// @Tags Books
// @Produce json
// @Success 200 {array} model.Book
// @Security ApiKeyAuth
// @Router /api/v1/books [get]
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.ListBooks(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, books)
}

// ListUserBooks godoc
// @Summary Книги пользователя
// @Tags Books
// @Produce json
// @Param uid path string true "UID пользователя"
// @Success 200 {array} model.Book
// @Security ApiKeyAuth
// @Router /api/v1/books/user/{uid} [get]
func (h *BookHandler) ListUserBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.ListUserBooks(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, books)
}

// GetBook godoc
// @Summary Книга по UID
// @Tags Books
// @Produce json
// @Param uid path string true "UID книги"
// @Success 200 {object} model.Book
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/books/{uid} [get]
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	book, err := h.bookService.GetBook(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, book)
}

// CreateBook godoc
// @Summary Добавление книги
// @Tags Books
// @Accept json
// @Produce json
// @Param body body requestresponse.BookCreateRequest true "Тело запроса"
// @Success 201 {object} model.Book
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/books [post]
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetCurrentUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", "missing_or_malformed_credential", http.StatusUnauthorized)
		return
	}

	var req requestresponse.BookCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	publishedDate, err := time.Parse("2006-01-02", req.PublishedDate)
	if err != nil {
		util.HandleError(w, "published_date должна быть в формате YYYY-MM-DD", "validation_failed", http.StatusBadRequest)
		return
	}

	book := &model.Book{
		Title:         req.Title,
		Author:        req.Author,
		Publisher:     req.Publisher,
		PublishedDate: publishedDate,
		PageCount:     req.PageCount,
		Language:      req.Language,
	}

	created, err := h.bookService.CreateBook(r.Context(), book, user)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, created)
}

// UpdateBook godoc
// @Summary Обновление книги
// @Description Обновлять книгу может только добавивший её пользователь
// @Tags Books
// @Accept json
// @Produce json
// @Param uid path string true "UID книги"
// @Param body body requestresponse.BookUpdateRequest true "Тело запроса"
// @Success 200 {object} model.Book
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/books/{uid} [put]
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetCurrentUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", "missing_or_malformed_credential", http.StatusUnauthorized)
		return
	}

	var req requestresponse.BookUpdateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	book := &model.Book{
		UID:       chi.URLParam(r, "uid"),
		Title:     req.Title,
		Author:    req.Author,
		Publisher: req.Publisher,
		PageCount: req.PageCount,
		Language:  req.Language,
	}

	updated, err := h.bookService.UpdateBook(r.Context(), book, user)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, updated)
}

// DeleteBook godoc
// @Summary Удаление книги
// @Description Удалить книгу может владелец или админ
// @Tags Books
// @Produce json
// @Param uid path string true "UID книги"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/books/{uid} [delete]
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetCurrentUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", "missing_or_malformed_credential", http.StatusUnauthorized)
		return
	}

	if err := h.bookService.DeleteBook(r.Context(), chi.URLParam(r, "uid"), user); err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, requestresponse.MessageResponse{Message: "Книга удалена"})
}

// CoverUpload godoc
// @Summary Ссылка для загрузки обложки
// @Description Выдает presigned PUT URL, грузить обложку может владелец книги
// @Tags Books
// @Produce json
// @Param uid path string true "UID книги"
// @Success 200 {object} requestresponse.CoverUploadResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/books/{uid}/cover [post]
func (h *BookHandler) CoverUpload(w http.ResponseWriter, r *http.Request) {
	user, err := security.GetCurrentUserFromContext(r.Context())
	if err != nil {
		util.HandleError(w, "не авторизован", "missing_or_malformed_credential", http.StatusUnauthorized)
		return
	}

	url, err := h.bookService.CoverUploadURL(r.Context(), chi.URLParam(r, "uid"), user)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, requestresponse.CoverUploadResponse{UploadURL: url})
}

// CoverGet godoc
// @Summary Ссылка на обложку
// @Tags Books
// @Produce json
// @Param uid path string true "UID книги"
// @Success 200 {object} requestresponse.CoverURLResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/books/{uid}/cover [get]
func (h *BookHandler) CoverGet(w http.ResponseWriter, r *http.Request) {
	url, err := h.bookService.CoverGetURL(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, requestresponse.CoverURLResponse{CoverURL: url})
}
