package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vhrodriguesv/clinicfin/internal/apperrors"
	portssvc "github.com/vhrodriguesv/clinicfin/internal/core/ports/services"
	"github.com/vhrodriguesv/clinicfin/internal/dto"
	"github.com/vhrodriguesv/clinicfin/internal/middleware"
)

// paymentMethodHandler handles HTTP requests for payment method reference data.
type paymentMethodHandler struct {
	paymentMethodService portssvc.PaymentMethodSvcFacade
}

// newPaymentMethodHandler creates a new paymentMethodHandler.
func newPaymentMethodHandler(paymentMethodService portssvc.PaymentMethodSvcFacade) *paymentMethodHandler {
	return &paymentMethodHandler{
		paymentMethodService: paymentMethodService,
	}
}

// createPaymentMethod godoc
// @Summary Register a payment or billing method
// @Description Card cycle configuration is required for (and only for) the CREDIT_CARD kind
// @Tags payment-methods
// @Accept  json
// @Produce  json
// @Param   method body dto.CreatePaymentMethodRequest true "Payment method"
// @Success 201 {object} dto.PaymentMethodResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /payment-methods [post]
func (h *paymentMethodHandler) createPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, _ := middleware.GetTenantIDFromContext(c)

	createReq := dto.CreatePaymentMethodRequest{}
	if err := c.ShouldBindJSON(&createReq); err != nil {
		logger.Error("Failed to bind JSON for CreatePaymentMethod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID := middleware.GetUserIDFromContext(c)

	method, err := h.paymentMethodService.CreatePaymentMethod(c.Request.Context(), tenantID, createReq, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating payment method", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create payment method", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment method"})
		return
	}

	logger.Info("Payment method created", slog.String("method_id", method.MethodID))
	c.JSON(http.StatusCreated, dto.ToPaymentMethodResponse(method))
}

// getPaymentMethod godoc
// @Summary Get a payment method
// @Tags payment-methods
// @Produce  json
// @Param   methodID path string true "Method ID"
// @Success 200 {object} dto.PaymentMethodResponse
// @Failure 404 {object} map[string]string "Payment method not found"
// @Router /payment-methods/{methodID} [get]
func (h *paymentMethodHandler) getPaymentMethod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, _ := middleware.GetTenantIDFromContext(c)
	methodID := c.Param("methodID")

	method, err := h.paymentMethodService.GetPaymentMethod(c.Request.Context(), tenantID, methodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
			return
		}
		logger.Error("Failed to get payment method", slog.String("error", err.Error()), slog.String("method_id", methodID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve payment method"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentMethodResponse(method))
}

// listPaymentMethods godoc
// @Summary List the tenant's payment methods
// @Tags payment-methods
// @Produce  json
// @Success 200 {array} dto.PaymentMethodResponse
// @Router /payment-methods [get]
func (h *paymentMethodHandler) listPaymentMethods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, _ := middleware.GetTenantIDFromContext(c)

	methods, err := h.paymentMethodService.ListPaymentMethods(c.Request.Context(), tenantID)
	if err != nil {
		logger.Error("Failed to list payment methods", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list payment methods"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentMethodResponses(methods))
}

// registerPaymentMethodRoutes registers payment method routes
func registerPaymentMethodRoutes(group *gin.RouterGroup, paymentMethodService portssvc.PaymentMethodSvcFacade) {
	handler := newPaymentMethodHandler(paymentMethodService)

	methods := group.Group("/payment-methods")
	{
		methods.POST("", handler.createPaymentMethod)
		methods.GET("", handler.listPaymentMethods)
		methods.GET("/:methodID", handler.getPaymentMethod)
	}
}
