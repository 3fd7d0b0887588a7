package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edukatsiya/education-platform/internal/api/metrics"
	"github.com/edukatsiya/education-platform/internal/core/ports"
)

// ReviewHandler handles HTTP requests for course reviews.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// List returns all reviews with course titles resolved.
//
// @Summary      List reviews
// @Tags         reviews
// @Produce      json
// @Success      200  {array}   reviewResponse
// @Failure      500  {object}  errorResponse
// @Router       /reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	views, err := h.service.ListReviews(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]reviewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toReviewResponse(&v.Review, v.CourseTitle))
	}
	return c.JSON(http.StatusOK, out)
}

// Create adds a review authored by the authenticated caller. The owner field
// always comes from the token claims, never from the body.
//
// @Summary      Create a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReviewRequest  true  "Review"
// @Success      201   {object}  reviewResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.service.CreateReview(c.Request().Context(), ports.CreateReviewInput{
		CourseID:  req.Course,
		UserEmail: claims.Email,
		Comment:   req.Comment,
		Rating:    req.Rating,
	})
	if err != nil {
		return err
	}

	metrics.ReviewsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toReviewResponse(review, ""))
}

// Update edits a review. Only its author or an admin may do so; a missing
// review yields 404 before any ownership decision.
//
// @Summary      Update a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Review id"
// @Param        body  body      updateReviewRequest  true  "Fields to change"
// @Success      200   {object}  reviewResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /reviews/{id} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.service.UpdateReview(c.Request().Context(), ports.UpdateReviewInput{
		ID:          c.Param("id"),
		CallerEmail: claims.Email,
		CallerRole:  claims.Role,
		Comment:     req.Comment,
		Rating:      req.Rating,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toReviewResponse(review, ""))
}

// Delete removes a review. Only its author or an admin may do so.
//
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Review id"
// @Success      200 {object}  messageResponse
// @Failure      401 {object}  errorResponse
// @Failure      403 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteReview(c.Request().Context(), ports.DeleteReviewInput{
		ID:          c.Param("id"),
		CallerEmail: claims.Email,
		CallerRole:  claims.Role,
	}); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "review deleted"})
}
