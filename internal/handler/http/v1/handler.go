package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/loadmatrix/driverd/internal/backend"
	"github.com/loadmatrix/driverd/internal/config"
	"github.com/loadmatrix/driverd/internal/models"
	"github.com/loadmatrix/driverd/internal/session"
)

// SessionService определяет контракт жизненного цикла панели водителя
type SessionService interface {
	Mount(userID string) (session.Status, error)
	Unmount() error
	Status() (session.Status, error)
	State() (models.GateState, error)
	Retry(ctx context.Context) (models.GateState, error)
	RefreshLocation(ctx context.Context) (*models.LocationSample, error)
}

// MarketplaceAPI определяет контракт marketplace API, проксируемого панелью
type MarketplaceAPI interface {
	AvailableOrders(ctx context.Context) ([]backend.AvailableOrder, error)
	MyOrders(ctx context.Context) ([]backend.OrderSummary, error)
	RequestedOrders(ctx context.Context, driverID int64) ([]backend.RequestedOrder, error)
	AcceptOrder(ctx context.Context, orderID int64) error
	AcceptRequest(ctx context.Context, orderID int64) error
	RejectRequest(ctx context.Context, orderID int64) error
	UpdateOrderStatus(ctx context.Context, orderID int64, status string) error
	Earnings(ctx context.Context) (*backend.EarningsSummary, error)
	Profile(ctx context.Context) (*backend.DriverProfile, error)
	UpdateProfile(ctx context.Context, req backend.UpdateProfileRequest) error
	SendSupportMessage(ctx context.Context, message string) error
	User() *backend.UserInfo
}

type Handler struct {
	sessions SessionService
	api      MarketplaceAPI
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(sessions SessionService, api MarketplaceAPI, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		sessions: sessions,
		api:      api,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// @Summary Mount the driver dashboard
// @Description Mount the dashboard for a user and run the online gate. Requires API key.
// @Tags Session
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param session body MountSessionRequest true "Session mount request"
// @Success 201 {object} SessionStatusResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /session [post]
func (h *Handler) mountSession(c *gin.Context) {
	var input MountSessionRequest
	log := h.logger.WithField("method", "mountSession")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.sessions.Mount(input.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to mount dashboard session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, StatusToResponse(status))
}

// @Summary Unmount the driver dashboard
// @Description Unmount the dashboard, stopping location reporting deterministically. Requires API key.
// @Tags Session
// @Produce json
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No mounted session"
// @Router /session [delete]
func (h *Handler) unmountSession(c *gin.Context) {
	if err := h.sessions.Unmount(); err != nil {
		if errors.Is(err, session.ErrNoSession) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no mounted session"})
			return
		}
		h.logger.WithField("method", "unmountSession").WithError(err).Error("Failed to unmount session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get session status
// @Description Get the gate state, pending notices and the last known location. Toasts are drained on read. Requires API key.
// @Tags Session
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SessionStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No mounted session"
// @Router /session/status [get]
func (h *Handler) sessionStatus(c *gin.Context) {
	status, err := h.sessions.Status()
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no mounted session"})
			return
		}
		h.logger.WithField("method", "sessionStatus").WithError(err).Error("Failed to get session status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, StatusToResponse(status))
}

// @Summary Retry the permission probe
// @Description Retry from the blocking modal. A fatal capability error cannot be retried. Requires API key.
// @Tags Gate
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} GateStateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No mounted session"
// @Router /gate/retry [post]
func (h *Handler) retryGate(c *gin.Context) {
	state, err := h.sessions.Retry(c.Request.Context())
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no mounted session"})
			return
		}
		h.logger.WithField("method", "retryGate").WithError(err).Error("Failed to retry gate probe")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, GateStateResponse{State: string(state)})
}

// @Summary Push the current location now
// @Description Manual "update now": reuse the last known location or run one ad-hoc probe, then push. Only while the gate is open. Requires API key.
// @Tags Location
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} LocationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No mounted session"
// @Failure 409 {object} map[string]string "Driver is not online"
// @Failure 502 {object} map[string]string "Probe or push failed"
// @Router /location/refresh [post]
func (h *Handler) refreshLocation(c *gin.Context) {
	log := h.logger.WithField("method", "refreshLocation")

	sample, err := h.sessions.RefreshLocation(c.Request.Context())
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no mounted session"})
			return
		}
		if errors.Is(err, session.ErrNotOnline) {
			c.JSON(http.StatusConflict, gin.H{"error": "driver is not online"})
			return
		}
		log.WithError(err).Warn("Manual location refresh failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not refresh location"})
		return
	}
	c.JSON(http.StatusOK, LocationToResponse(sample))
}

// requireOpenGate пропускает запрос только при открытом шлюзе:
// операционные данные не отдаются, пока водитель не на линии
func (h *Handler) requireOpenGate(c *gin.Context) bool {
	state, err := h.sessions.State()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no mounted session"})
		return false
	}
	if state != models.GateOpen {
		c.JSON(http.StatusConflict, gin.H{"error": "driver is not online"})
		return false
	}
	return true
}

// @Summary List available orders
// @Description List pending orders from the shared queue. Only while the gate is open. Requires API key.
// @Tags Orders
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} backend.AvailableOrder
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No mounted session"
// @Failure 409 {object} map[string]string "Driver is not online"
// @Router /orders/available [get]
func (h *Handler) availableOrders(c *gin.Context) {
	if !h.requireOpenGate(c) {
		return
	}
	orders, err := h.api.AvailableOrders(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "availableOrders").WithError(err).Error("Failed to fetch available orders")
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch available orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// @Summary List my orders
// @Description List orders assigned to this driver. Only while the gate is open. Requires API key.
// @Tags Orders
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} backend.OrderSummary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No mounted session"
// @Failure 409 {object} map[string]string "Driver is not online"
// @Router /orders [get]
func (h *Handler) myOrders(c *gin.Context) {
	if !h.requireOpenGate(c) {
		return
	}
	orders, err := h.api.MyOrders(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "myOrders").WithError(err).Error("Failed to fetch orders")
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// @Summary List requested orders
// @Description List orders offered to this driver and awaiting a decision. Only while the gate is open. Requires API key.
// @Tags Orders
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} backend.RequestedOrder
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No mounted session"
// @Failure 409 {object} map[string]string "Driver is not online"
// @Router /orders/requested [get]
func (h *Handler) requestedOrders(c *gin.Context) {
	if !h.requireOpenGate(c) {
		return
	}
	user := h.api.User()
	if user == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "driver is not authenticated"})
		return
	}
	orders, err := h.api.RequestedOrders(c.Request.Context(), user.DriverID)
	if err != nil {
		h.logger.WithField("method", "requestedOrders").WithError(err).Error("Failed to fetch requested orders")
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch requested orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
		return 0, false
	}
	return id, true
}

// @Summary Accept an order
// @Description Take a pending order from the shared queue. Only while the gate is open. Requires API key.
// @Tags Orders
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Order ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid order ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Driver is not online"
// @Router /orders/{id}/accept [post]
func (h *Handler) acceptOrder(c *gin.Context) {
	if !h.requireOpenGate(c) {
		return
	}
	id, ok := h.orderID(c)
	if !ok {
		return
	}
	if err := h.api.AcceptOrder(c.Request.Context(), id); err != nil {
		h.logger.WithField("method", "acceptOrder").WithError(err).Error("Failed to accept order")
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not accept order"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Accept an order request
// @Description Confirm an order offered to this driver. Only while the gate is open. Requires API key.
// @Tags Orders
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Order ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid order ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Driver is not online"
// @Router /orders/{id}/accept_request [post]
func (h *Handler) acceptRequest(c *gin.Context) {
	if !h.requireOpenGate(c) {
		return
	}
	id, ok := h.orderID(c)
	if !ok {
		return
	}
	if err := h.api.AcceptRequest(c.Request.Context(), id); err != nil {
		h.logger.WithField("method", "acceptRequest").WithError(err).Error("Failed to accept order request")
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not accept order request"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Reject an order request
// @Description Return an offered order back to the queue. Only while the gate is open. Requires API key.
// @Tags Orders
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Order ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid order ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Driver is not online"
// @Router /orders/{id}/reject_request [post]
func (h *Handler) rejectRequest(c *gin.Context) {
	if !h.requireOpenGate(c) {
		return
	}
	id, ok := h.orderID(c)
	if !ok {
		return
	}
	if err := h.api.RejectRequest(c.Request.Context(), id); err != nil {
		h.logger.WithField("method", "rejectRequest").WithError(err).Error("Failed to reject order request")
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not reject order request"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Update order delivery status
// @Description Move an order through the delivery lifecycle. Only while the gate is open. Requires API key.
// @Tags Orders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Order ID"
// @Param status body UpdateOrderStatusRequest true "New order status"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid order ID or status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Driver is not online"
// @Router /orders/{id}/status [post]
func (h *Handler) updateOrderStatus(c *gin.Context) {
	log := h.logger.WithField("method", "updateOrderStatus")
	if !h.requireOpenGate(c) {
		return
	}
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	var input UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.api.UpdateOrderStatus(c.Request.Context(), id, input.Status); err != nil {
		log.WithError(err).Error("Failed to update order status")
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not update order status"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get driver earnings
// @Description Get the delivered order count and total earnings. Requires API key.
// @Tags Driver
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} backend.EarningsSummary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /earnings [get]
func (h *Handler) earnings(c *gin.Context) {
	summary, err := h.api.Earnings(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "earnings").WithError(err).Error("Failed to fetch earnings")
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch earnings"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Get driver profile
// @Description Get driver profile information. Requires API key.
// @Tags Driver
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} backend.DriverProfile
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /profile [get]
func (h *Handler) profile(c *gin.Context) {
	profile, err := h.api.Profile(c.Request.Context())
	if err != nil {
		h.logger.WithField("method", "profile").WithError(err).Error("Failed to fetch profile")
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// @Summary Update driver profile
// @Description Update driver profile information. Requires API key.
// @Tags Driver
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param profile body UpdateProfileRequest true "Profile update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /profile [put]
func (h *Handler) updateProfile(c *gin.Context) {
	var input UpdateProfileRequest
	log := h.logger.WithField("method", "updateProfile")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.api.UpdateProfile(c.Request.Context(), backend.UpdateProfileRequest{
		Name:          input.Name,
		Phone:         input.Phone,
		LicenseNumber: input.LicenseNumber,
		VehicleType:   input.VehicleType,
		VehicleNumber: input.VehicleNumber,
	})
	if err != nil {
		log.WithError(err).Error("Failed to update profile")
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not update profile"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Send a support chat message
// @Description Send a message to marketplace support. Requires API key.
// @Tags Driver
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param message body SupportMessageRequest true "Support message"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /support/chat [post]
func (h *Handler) supportChat(c *gin.Context) {
	var input SupportMessageRequest
	log := h.logger.WithField("method", "supportChat")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.api.SendSupportMessage(c.Request.Context(), input.Message); err != nil {
		log.WithError(err).Error("Failed to send support message")
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not send message"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get application health status
// @Description Get health status of the agent
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
