package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edukatsiya/education-platform/internal/core/ports"
)

// TeacherHandler handles HTTP requests for teacher profiles.
type TeacherHandler struct {
	service ports.TeacherService
}

func NewTeacherHandler(service ports.TeacherService) *TeacherHandler {
	return &TeacherHandler{service: service}
}

// List returns all teacher profiles.
//
// @Summary      List teachers
// @Tags         teachers
// @Produce      json
// @Success      200  {array}   domain.Teacher
// @Failure      500  {object}  errorResponse
// @Router       /teachers [get]
func (h *TeacherHandler) List(c echo.Context) error {
	teachers, err := h.service.ListTeachers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teachers)
}

// Get returns one teacher profile by id.
//
// @Summary      Get a teacher
// @Tags         teachers
// @Produce      json
// @Param        id  path      string  true  "Teacher id"
// @Success      200 {object}  domain.Teacher
// @Failure      404 {object}  errorResponse
// @Router       /teachers/{id} [get]
func (h *TeacherHandler) Get(c echo.Context) error {
	teacher, err := h.service.GetTeacher(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teacher)
}

// Create adds a teacher profile. Admin-only.
//
// @Summary      Create a teacher
// @Tags         teachers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      teacherRequest  true  "Teacher"
// @Success      201   {object}  domain.Teacher
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /teachers [post]
func (h *TeacherHandler) Create(c echo.Context) error {
	var req teacherRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	teacher, err := h.service.CreateTeacher(c.Request().Context(), ports.CreateTeacherInput{
		Name:  req.Name,
		Image: req.Image,
		Bio:   req.Bio,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, teacher)
}

// Update edits a teacher profile. Admin-only; omitted fields stay unchanged.
//
// @Summary      Update a teacher
// @Tags         teachers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Teacher id"
// @Param        body  body      teacherUpdateRequest  true  "Fields to change"
// @Success      200   {object}  domain.Teacher
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /teachers/{id} [put]
func (h *TeacherHandler) Update(c echo.Context) error {
	var req teacherUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	teacher, err := h.service.UpdateTeacher(c.Request().Context(), c.Param("id"), ports.CreateTeacherInput{
		Name:  req.Name,
		Image: req.Image,
		Bio:   req.Bio,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teacher)
}

// Delete removes a teacher profile. Admin-only.
//
// @Summary      Delete a teacher
// @Tags         teachers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Teacher id"
// @Success      200 {object}  messageResponse
// @Failure      401 {object}  errorResponse
// @Failure      403 {object}  errorResponse
// @Failure      404 {object}  errorResponse
// @Router       /teachers/{id} [delete]
func (h *TeacherHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteTeacher(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "teacher deleted"})
}
