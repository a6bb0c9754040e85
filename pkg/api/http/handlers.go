package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aescanero/bookshelf/pkg/domain"
)

const (
	msgBadRequest       = "Bad request"
	msgBookNotFound     = "Book not found"
	msgResourceNotFound = "Resource not found"
	msgMethodNotAllowed = "Method not allowed"
	msgInternalError    = "Internal server error"
	msgBookDeleted      = "Book deleted successfully"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse represents a plain confirmation
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse is the readiness payload
type ReadyResponse struct {
	Status     string `json:"status"`
	BooksCount int    `json:"books_count"`
}

// handleHealth handles liveness probes
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}

// handleReady handles readiness probes
func (s *Server) handleReady(c *gin.Context) {
	c.JSON(http.StatusOK, ReadyResponse{
		Status:     "ready",
		BooksCount: s.store.Count(),
	})
}

// handleListBooks handles listing all books
func (s *Server) handleListBooks(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.List(c.Request.Context()))
}

// handleCreateBook handles book creation
func (s *Server) handleCreateBook(c *gin.Context) {
	body, err := s.readBody(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	newBook, err := s.validator.ValidateCreate(body)
	if err != nil {
		s.respondError(c, err)
		return
	}

	book := s.store.Create(c.Request.Context(), newBook)

	s.logger.Debug("book created",
		zap.String("request_id", RequestID(c)),
		zap.Int("book_id", book.ID))

	c.JSON(http.StatusCreated, book)
}

// handleGetBook handles fetching a single book
func (s *Server) handleGetBook(c *gin.Context) {
	book, err := s.store.Get(c.Request.Context(), c.GetInt(bookIDKey))
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// handleUpdateBook handles partial updates. An unknown id wins over a bad
// body.
func (s *Server) handleUpdateBook(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.GetInt(bookIDKey)

	current, err := s.store.Get(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	body, err := s.readBody(c)
	if err != nil {
		s.respondError(c, err)
		return
	}

	update, err := s.validator.ValidateUpdate(body)
	if err != nil {
		s.respondError(c, err)
		return
	}
	// only unknown keys were sent
	if update.IsEmpty() {
		c.JSON(http.StatusOK, current)
		return
	}

	book, err := s.store.Update(ctx, id, update)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// handleDeleteBook handles removal. It answers 200 with a message rather
// than 204.
func (s *Server) handleDeleteBook(c *gin.Context) {
	id := c.GetInt(bookIDKey)

	if err := s.store.Delete(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}

	s.logger.Debug("book deleted",
		zap.String("request_id", RequestID(c)),
		zap.Int("book_id", id))

	c.JSON(http.StatusOK, MessageResponse{Message: msgBookDeleted})
}

// readBody reads at most maxBodyBytes of the request body
func (s *Server) readBody(c *gin.Context) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxBodyBytes)

	body, err := c.GetRawData()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedBody, err)
	}
	return body, nil
}

// respondError maps err onto the error envelope. Anything outside the
// domain taxonomy is logged and hidden behind a generic 500.
func (s *Server) respondError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		abortWithError(c, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, domain.ErrMalformedBody):
		abortWithError(c, http.StatusBadRequest, msgBadRequest)
	case errors.Is(err, domain.ErrBookNotFound):
		abortWithError(c, http.StatusNotFound, msgBookNotFound)
	default:
		s.logger.Error("request failed",
			zap.String("request_id", RequestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, msgInternalError)
	}
}

// handleNoRoute answers unmatched routes
func handleNoRoute(c *gin.Context) {
	abortWithError(c, http.StatusNotFound, msgResourceNotFound)
}

// handleNoMethod answers known routes called with the wrong verb
func handleNoMethod(c *gin.Context) {
	abortWithError(c, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg})
}
