package handlers

import (
	"net/http"

	"brightnest/models"
	"brightnest/services/pricing"
	"brightnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PricingHandler serves price quotes.
type PricingHandler struct {
	Calculator *pricing.Calculator
	Logger     *zap.Logger
}

func NewPricingHandler(calculator *pricing.Calculator, logger *zap.Logger) *PricingHandler {
	return &PricingHandler{Calculator: calculator, Logger: logger}
}

// QuoteHandler prices a service configuration. Malformed configurations are
// a 400; a catalog gap is a 500 that pages operators, never the caller's fault.
func (h *PricingHandler) QuoteHandler(c *gin.Context) {
	var req models.PricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if !pricing.ValidateOptions(req) {
		utils.JSONError(c, http.StatusBadRequest, "invalid pricing options", "size, frequency, and addons are required")
		return
	}

	result, err := h.Calculator.Calculate(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("pricing catalog misconfigured", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "pricing unavailable", "please try again later")
		return
	}

	c.JSON(http.StatusOK, result)
}
