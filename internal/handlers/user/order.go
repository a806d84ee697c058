package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dukani_back_end/internal/database"
	"dukani_back_end/internal/models"
)

// GET /api/orders
// Historique de l'utilisateur, du plus récent au plus ancien
// (clustering DESC sur created_at dans orders_by_user)
func MyOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Service unavailable"})
		return
	}

	iter := session.Query(`SELECT order_id, created_at, total_amount, status
		FROM orders_by_user WHERE user_id = ?`, userID).Iter()

	orders := []models.Order{}
	var o models.Order
	for iter.Scan(&o.ID, &o.CreatedAt, &o.TotalAmount, &o.Status) {
		o.UserID = userID
		orders = append(orders, o)
		o = models.Order{}
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
}

// GET /api/orders/:id
// Une commande n'est visible que par son propriétaire
func GetOrder(c *gin.Context) {
	userID := c.GetString("user_id")
	orderID := c.Param("id")

	order, err := loadOrder(orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != userID {
		// 404 plutôt que 403 : ne pas révéler l'existence de la commande
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// loadOrder lit une commande complète avec ses lignes
func loadOrder(orderID string) (*models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	var order models.Order
	err = session.Query(`SELECT order_id, user_id, total_amount, full_name, phone, street_address,
		city, state, postal_code, notes, status, created_at FROM orders WHERE order_id = ?`, orderID).Scan(
		&order.ID, &order.UserID, &order.TotalAmount,
		&order.ShippingAddress.FullName, &order.ShippingAddress.Phone,
		&order.ShippingAddress.StreetAddress, &order.ShippingAddress.City,
		&order.ShippingAddress.State, &order.ShippingAddress.PostalCode,
		&order.Notes, &order.Status, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT order_id, product_id, product_name, product_image, quantity,
		price_at_purchase FROM order_items WHERE order_id = ?`, orderID).Iter()

	var item models.OrderItem
	for iter.Scan(&item.OrderID, &item.ProductID, &item.ProductName, &item.ProductImage,
		&item.Quantity, &item.PriceAtPurchase) {
		order.Items = append(order.Items, item)
		item = models.OrderItem{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	return &order, nil
}
