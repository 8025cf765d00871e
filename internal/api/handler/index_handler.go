package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIVersion is reported by the index endpoint.
const APIVersion = "1.0.0"

type indexResponse struct {
	Message   string         `json:"message"`
	Version   string         `json:"version"`
	Endpoints map[string]any `json:"endpoints"`
}

// Index handles GET /api with a static directory of the available routes.
// The seed entry is listed only when the route is registered.
//
// @Summary      API directory
// @Tags         utilities
// @Produce      json
// @Success      200  {object}  indexResponse
// @Router       / [get]
func Index(seedEnabled bool) echo.HandlerFunc {
	endpoints := map[string]any{
		"health": "GET /api/health",
		"users": map[string]string{
			"getAll":  "GET /api/users",
			"create":  "POST /api/users",
			"getById": "GET /api/users/:id",
			"update":  "PUT /api/users/:id",
			"delete":  "DELETE /api/users/:id",
		},
		"posts": map[string]string{
			"getAll": "GET /api/posts",
			"create": "POST /api/posts",
		},
	}
	if seedEnabled {
		endpoints["utilities"] = map[string]string{"seed": "POST /api/seed"}
	}

	resp := indexResponse{
		Message:   "MERN Stack API",
		Version:   APIVersion,
		Endpoints: endpoints,
	}
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, resp)
	}
}
