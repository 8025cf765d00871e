package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mernapp/mern-api/internal/api/metrics"
	"github.com/mernapp/mern-api/internal/core/domain"
	"github.com/mernapp/mern-api/internal/core/ports"
)

// SeedHandler exposes the destructive sample-data reset.
type SeedHandler struct {
	service ports.SeedService
}

func NewSeedHandler(service ports.SeedService) *SeedHandler {
	return &SeedHandler{service: service}
}

// Seed handles POST /api/seed.
//
// @Summary      Replace all users and posts with the sample data set
// @Description  Destructive. Only registered when seeding is enabled.
// @Tags         utilities
// @Produce      json
// @Success      200  {object}  Envelope{data=ports.SeedResult}
// @Failure      409  {object}  Envelope
// @Failure      500  {object}  Envelope
// @Router       /seed [post]
func (h *SeedHandler) Seed(c echo.Context) error {
	result, err := h.service.Seed(c.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrSeedInProgress) {
			metrics.SeedRunsTotal.WithLabelValues("conflict").Inc()
		} else {
			metrics.SeedRunsTotal.WithLabelValues("error").Inc()
		}
		return failed("Failed to seed database", err)
	}

	metrics.SeedRunsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, withMessage("Database seeded successfully", result))
}
