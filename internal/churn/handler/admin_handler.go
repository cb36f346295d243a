package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KAVITHAPANDIAN2504/Customer-Churn-Prediction-Revenue-Analytics/internal/churn/service"
)

type AdminHandler struct {
	seed *service.SeedService
}

func NewAdminHandler(seed *service.SeedService) *AdminHandler {
	return &AdminHandler{seed: seed}
}

// Reseed wipes and regenerates the synthetic dataset. Guarded by the
// Redis seed lock; a second request while one is running gets a 409.
func (h *AdminHandler) Reseed(c *gin.Context) {
	var opts service.SeedOptions
	if err := c.ShouldBindJSON(&opts); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
		return
	}
	opts.Wipe = true

	counts, err := h.seed.Run(c.Request.Context(), opts)
	if err != nil {
		if errors.Is(err, service.ErrSeedInProgress) {
			c.JSON(http.StatusConflict, gin.H{"code": 40901, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": counts})
}
