package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edukatsiya/education-platform/internal/core/ports"
)

// AdvantageHandler handles HTTP requests for landing-page advantages.
type AdvantageHandler struct {
	service ports.AdvantageService
}

func NewAdvantageHandler(service ports.AdvantageService) *AdvantageHandler {
	return &AdvantageHandler{service: service}
}

// List returns all advantages.
//
// @Summary      List advantages
// @Tags         advantages
// @Produce      json
// @Success      200  {array}   domain.Advantage
// @Failure      500  {object}  errorResponse
// @Router       /advantages [get]
func (h *AdvantageHandler) List(c echo.Context) error {
	advantages, err := h.service.ListAdvantages(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, advantages)
}

// Create adds an advantage. Admin-only.
//
// @Summary      Create an advantage
// @Tags         advantages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      advantageRequest  true  "Advantage"
// @Success      201   {object}  domain.Advantage
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /advantages [post]
func (h *AdvantageHandler) Create(c echo.Context) error {
	var req advantageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	advantage, err := h.service.CreateAdvantage(c.Request().Context(), ports.CreateAdvantageInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, advantage)
}

// Update edits an advantage. Admin-only.
//
// @Summary      Update an advantage
// @Tags         advantages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Advantage id"
// @Param        body  body      advantageUpdateRequest  true  "Fields to change"
// @Success      200   {object}  domain.Advantage
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /advantages/{id} [put]
func (h *AdvantageHandler) Update(c echo.Context) error {
	var req advantageUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	advantage, err := h.service.UpdateAdvantage(c.Request().Context(), c.Param("id"), ports.CreateAdvantageInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, advantage)
}

// Delete removes an advantage. Admin-only.
//
// @Summary      Delete an advantage
// @Tags         advantages
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Advantage id"
// @Success      200 {object}  messageResponse
// @Failure      401 {object}  errorResponse
// @Failure      403 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Router       /advantages/{id} [delete]
func (h *AdvantageHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteAdvantage(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "advantage deleted"})
}

// StudentReviewHandler handles HTTP requests for curated testimonials.
type StudentReviewHandler struct {
	service ports.StudentReviewService
}

func NewStudentReviewHandler(service ports.StudentReviewService) *StudentReviewHandler {
	return &StudentReviewHandler{service: service}
}

// List returns all testimonials.
//
// @Summary      List student reviews
// @Tags         student-reviews
// @Produce      json
// @Success      200  {array}   domain.StudentReview
// @Failure      500  {object}  errorResponse
// @Router       /student-reviews [get]
func (h *StudentReviewHandler) List(c echo.Context) error {
	reviews, err := h.service.ListStudentReviews(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// Create adds a testimonial. Admin-only; used by seeding.
//
// @Summary      Create a student review
// @Tags         student-reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      studentReviewRequest  true  "Student review"
// @Success      201   {object}  domain.StudentReview
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /student-reviews [post]
func (h *StudentReviewHandler) Create(c echo.Context) error {
	var req studentReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.service.CreateStudentReview(c.Request().Context(), ports.CreateStudentReviewInput{
		Name:   req.Name,
		Course: req.Course,
		Text:   req.Text,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, review)
}
