package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mernapp/mern-api/internal/api/metrics"
	"github.com/mernapp/mern-api/internal/core/ports"
)

// UserHandler handles HTTP requests for the users resource.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/users.
//
// @Summary      List users, newest first
// @Tags         users
// @Produce      json
// @Success      200  {object}  Envelope{data=[]domain.User}
// @Failure      500  {object}  Envelope
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return failed("Failed to fetch users", err)
	}
	return c.JSON(http.StatusOK, list(users))
}

// Create handles POST /api/users.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User"
// @Success      201   {object}  Envelope{data=domain.User}
// @Failure      400   {object}  Envelope
// @Failure      500   {object}  Envelope
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.CreateUser(c.Request().Context(), req.toInput())
	if err != nil {
		return failed("Failed to create user", err)
	}

	metrics.UsersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, withMessage("User created successfully", user))
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id (24-char hex)"
// @Success      200  {object}  Envelope{data=domain.User}
// @Failure      400  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Failure      500  {object}  Envelope
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return failed("Failed to fetch user", err)
	}
	return c.JSON(http.StatusOK, ok(user))
}

// Update handles PUT /api/users/:id. Omitted fields keep their stored values.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id (24-char hex)"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  Envelope{data=domain.User}
// @Failure      400   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Failure      500   {object}  Envelope
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidPayload
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.UpdateUser(c.Request().Context(), c.Param("id"), req.toPatch())
	if err != nil {
		return failed("Failed to update user", err)
	}

	metrics.UsersUpdatedTotal.Inc()
	return c.JSON(http.StatusOK, withMessage("User updated successfully", user))
}

// Delete handles DELETE /api/users/:id. Posts by the user are not removed.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id (24-char hex)"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Failure      500  {object}  Envelope
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return failed("Failed to delete user", err)
	}

	metrics.UsersDeletedTotal.Inc()
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: "User deleted successfully"})
}
