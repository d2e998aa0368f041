package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookhive/bookstore-api/internal/core/ports"
)

// BookHandler handles HTTP requests for the book inventory.
type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// Create handles POST /api/books.
//
// @Summary      Create a new book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookRequest  true  "Book details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /books [post]
func (h *BookHandler) Create(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Please provide title, description, and amount")
	}

	book, err := h.service.Create(c.Request().Context(), actor, ports.CreateBookInput{
		Title:       req.Title,
		Description: req.Description,
		Amount:      *req.Amount,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, envelope{Success: true, Data: book})
}

// List handles GET /api/books. No authentication required.
//
// @Summary      List all books
// @Tags         books
// @Produce      json
// @Success      200  {object}  envelope
// @Router       /books [get]
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{Success: true, Count: countOf(len(books)), Data: books})
}

// Get handles GET /api/books/:id. No authentication required.
//
// @Summary      Get a single book
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book ID"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /books/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	book, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{Success: true, Data: book})
}

// Update handles PUT /api/books/:id. Owner or admin only; partial update.
//
// @Summary      Update a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Book ID"
// @Param        body  body      updateBookRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      403   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /books/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}

	book, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.BookUpdate{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{Success: true, Data: book})
}

// Delete handles DELETE /api/books/:id. Owner or admin only.
//
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Book ID"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /books/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{Success: true, Message: "Book deleted successfully"})
}

// Buy handles POST /api/books/:id/buy — the purchase transaction.
//
// @Summary      Buy a book
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Book ID"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /books/{id}/buy [post]
func (h *BookHandler) Buy(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	result, err := h.service.Buy(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "Book purchased successfully",
		Data:    result,
	})
}
