package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/essay-orders-api/models"
	"github.com/kendall-kelly/essay-orders-api/services"
	"github.com/shopspring/decimal"
)

// AssignWriterRequest is the body of POST /orders/:id/assign
type AssignWriterRequest struct {
	WriterUserID uint `json:"writerUserId" binding:"required"`
}

// RatingRequest is the body of POST /orders/:id/rating
type RatingRequest struct {
	Rating float64 `json:"rating" binding:"required,gte=1,lte=5"`
}

// BidRequest is the body of POST /orders/:id/bids
type BidRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// FunnelStepRequest is the body of POST /orders/:id/step
type FunnelStepRequest struct {
	Step int `json:"step" binding:"required,gt=0"`
}

// PlaceOrder handles POST /api/v1/orders - creates an order, or updates it when orderId is set
func PlaceOrder(c *gin.Context) {
	user, ok := currentUserWithRole(c, models.RoleClient)
	if !ok {
		return
	}

	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	req.Email = user.Email

	result, err := services.GetOrderService().PlaceOrder(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to place order")
		return
	}

	status := http.StatusOK
	if result.NewOrder {
		status = http.StatusCreated
	}
	respondOK(c, status, result)
}

// ListOrders handles GET /api/v1/orders - lists the client's orders, optionally ?status_id=
func ListOrders(c *gin.Context) {
	user, ok := currentUserWithRole(c, models.RoleClient)
	if !ok {
		return
	}

	var statusID uint64
	if raw := c.Query("status_id"); raw != "" {
		var err error
		statusID, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_STATUS", "status_id must be a number")
			return
		}
	}

	orders, err := services.GetOrderService().GetOrders(c.Request.Context(), user.Email, uint(statusID))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve orders")
		return
	}
	respondOK(c, http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:id - full detail of one of the client's orders
func GetOrder(c *gin.Context) {
	user, ok := currentUserWithRole(c, models.RoleClient)
	if !ok {
		return
	}
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}

	detail, err := services.GetOrderService().GetOrder(c.Request.Context(), user.Email, orderID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve order")
		return
	}
	if detail == nil {
		respondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", services.MessageOrderNotFound)
		return
	}
	respondOK(c, http.StatusOK, detail)
}

// ResumeOrder handles GET /api/v1/orders/resume?order_id=&got_started=
func ResumeOrder(c *gin.Context) {
	user, ok := currentUserWithRole(c, models.RoleClient)
	if !ok {
		return
	}

	var orderID uint64
	if raw := c.Query("order_id"); raw != "" {
		var err error
		if orderID, err = strconv.ParseUint(raw, 10, 64); err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid order_id format")
			return
		}
	}
	gotStarted, _ := strconv.ParseBool(c.DefaultQuery("got_started", "false"))

	result, err := services.GetOrderService().ResumeOrder(c.Request.Context(), user.Email, uint(orderID), gotStarted)
	if err != nil {
		respondServiceError(c, err, "Failed to resume order")
		return
	}
	respondOK(c, http.StatusOK, result)
}

// SavePayment handles POST /api/v1/orders/:id/payment - the checkout screen
func SavePayment(c *gin.Context) {
	user, ok := currentUserWithRole(c, models.RoleClient)
	if !ok {
		return
	}

	var req services.SavePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	// the path id wins over any id in the body; 0 falls back to fallbackOrderId
	if id, err := strconv.ParseUint(c.Param("id"), 10, 64); err == nil {
		req.OrderID = uint(id)
	}
	req.Email = user.Email

	result, err := services.GetOrderService().SavePayment(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to save payment")
		return
	}
	respondOK(c, http.StatusOK, result)
}

// ConfirmPayment handles POST /api/v1/orders/:id/payment/confirm
func ConfirmPayment(c *gin.Context) {
	user, ok := currentUserWithRole(c, models.RoleClient)
	if !ok {
		return
	}
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req services.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	req.Email = user.Email
	req.OrderID = orderID

	result, err := services.GetOrderService().ConfirmClientPayment(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to record payment")
		return
	}
	respondOK(c, http.StatusOK, result)
}

// RequestRevision handles POST /api/v1/orders/:id/revisions
func RequestRevision(c *gin.Context) {
	user, ok := currentUserWithRole(c, models.RoleClient)
	if !ok {
		return
	}
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req services.RevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}
	req.Email = user.Email
	req.OrderID = orderID

	result, err := services.GetOrderService().RequestRevision(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "Failed to request revision")
		return
	}
	respondOK(c, http.StatusOK, result)
}

// RateWriter handles POST /api/v1/orders/:id/rating
func RateWriter(c *gin.Context) {
	user, ok := currentUserWithRole(c, models.RoleClient)
	if !ok {
		return
	}
	order, ok := ownedOrder(c, user)
	if !ok {
		return
	}

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := services.GetOrderService().RateWriter(c.Request.Context(), order.ID, req.Rating)
	if err != nil {
		respondServiceError(c, err, "Failed to rate writer")
		return
	}
	respondOK(c, http.StatusOK, result)
}

// AssignWriter handles POST /api/v1/orders/:id/assign - the client picks the writer
func AssignWriter(c *gin.Context) {
	user, ok := currentUserWithRole(c, models.RoleClient)
	if !ok {
		return
	}
	order, ok := ownedOrder(c, user)
	if !ok {
		return
	}

	var req AssignWriterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	visibility := models.VisibilityPublic
	if order.OrderType != nil {
		visibility = order.OrderType.Name
	}

	result, err := services.GetOrderService().UpdateOrderStatus(c.Request.Context(), order.ID, req.WriterUserID, visibility)
	if err != nil {
		respondServiceError(c, err, "Failed to assign writer")
		return
	}
	respondOK(c, http.StatusOK, result)
}

// PlaceBid handles POST /api/v1/orders/:id/bids (writers only)
func PlaceBid(c *gin.Context) {
	user, ok := currentUserWithRole(c, models.RoleWriter)
	if !ok {
		return
	}
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req BidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := services.GetOrderService().PlaceBid(c.Request.Context(), user.ID, orderID, req.Amount)
	if err != nil {
		respondServiceError(c, err, "Failed to place bid")
		return
	}

	status := http.StatusOK
	if result.Placed {
		status = http.StatusCreated
	}
	respondOK(c, status, result)
}

// DeleteOrderFile handles DELETE /api/v1/orders/:id/files/:fileId
func DeleteOrderFile(c *gin.Context) {
	user, ok := currentUserWithRole(c, models.RoleClient)
	if !ok {
		return
	}
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}
	fileID, ok := idParam(c, "fileId")
	if !ok {
		return
	}

	result, err := services.GetOrderService().DeleteOrderFile(c.Request.Context(), user.Email, orderID, fileID)
	if err != nil {
		respondServiceError(c, err, "Failed to delete file")
		return
	}
	respondOK(c, http.StatusOK, result)
}

// SaveFunnelStep handles POST /api/v1/orders/:id/step
func SaveFunnelStep(c *gin.Context) {
	user, ok := currentUserWithRole(c, models.RoleClient)
	if !ok {
		return
	}
	orderID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req FunnelStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := services.GetOrderService().SaveFunnelStep(c.Request.Context(), user.Email, orderID, req.Step); err != nil {
		respondServiceError(c, err, "Failed to save step")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"step": req.Step})
}

// ownedOrder resolves the :id order and checks the user's client profile owns it
func ownedOrder(c *gin.Context, user *models.User) (*models.Order, bool) {
	orderID, ok := idParam(c, "id")
	if !ok {
		return nil, false
	}

	order, err := services.GetOrderService().ClientOrder(c.Request.Context(), user.Email, orderID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve order")
		return nil, false
	}
	if order == nil {
		respondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", services.MessageOrderNotFound)
		return nil, false
	}
	return order, true
}
