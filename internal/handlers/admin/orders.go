package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dukani_back_end/internal/database"
	"dukani_back_end/internal/models"
	"dukani_back_end/internal/utils"
)

// GET /api/admin/orders
func ListAllOrders(c *gin.Context) {
	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Service unavailable"})
		return
	}

	status := c.Query("status")
	if status != "" && !models.IsValidOrderStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	iter := session.Query(`SELECT order_id, user_id, total_amount, full_name, phone, street_address,
		city, state, postal_code, notes, status, created_at FROM orders`).Iter()

	orders := []models.Order{}
	var o models.Order
	for iter.Scan(&o.ID, &o.UserID, &o.TotalAmount,
		&o.ShippingAddress.FullName, &o.ShippingAddress.Phone,
		&o.ShippingAddress.StreetAddress, &o.ShippingAddress.City,
		&o.ShippingAddress.State, &o.ShippingAddress.PostalCode,
		&o.Notes, &o.Status, &o.CreatedAt) {
		if status == "" || o.Status == status {
			orders = append(orders, o)
		}
		o = models.Order{}
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
}

// PUT /api/admin/orders/:id/status
func UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}
	if !models.IsValidOrderStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Service unavailable"})
		return
	}

	var userID, oldStatus string
	var createdAt time.Time
	err = session.Query("SELECT user_id, status, created_at FROM orders WHERE order_id = ?", orderID).
		Scan(&userID, &oldStatus, &createdAt)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := session.Query("UPDATE orders SET status = ? WHERE order_id = ?",
		input.Status, orderID).Exec(); err != nil {
		utils.LogFailedAction(c, utils.ACTION_ORDER_STATUS_UPDATE, utils.RESOURCE_ORDER, orderID, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	// Réplique du statut dans la table de lecture par utilisateur
	if err := session.Query("UPDATE orders_by_user SET status = ? WHERE user_id = ? AND created_at = ?",
		input.Status, userID, createdAt).Exec(); err != nil {
		utils.LogFailedAction(c, utils.ACTION_ORDER_STATUS_UPDATE, utils.RESOURCE_ORDER, orderID, err.Error())
	}

	utils.LogAction(c, utils.ACTION_ORDER_STATUS_UPDATE, utils.RESOURCE_ORDER, orderID,
		gin.H{"status": oldStatus}, gin.H{"status": input.Status})

	c.JSON(http.StatusOK, gin.H{"success": true, "status": input.Status})
}
