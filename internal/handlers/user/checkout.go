package user

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"dukani_back_end/internal/cart"
	"dukani_back_end/internal/checkout"
	"dukani_back_end/internal/database"
	"dukani_back_end/internal/models"
	"dukani_back_end/internal/orders"
	"dukani_back_end/internal/utils"
)

const checkoutTTL = 1 * time.Hour

func checkoutKey(userID string) string { return "checkout:" + userID }

// loadCheckout lit la session de tunnel, ou en démarre une nouvelle
func loadCheckout(ctx context.Context, userID string) *checkout.Session {
	data, err := database.Redis.Get(ctx, checkoutKey(userID)).Result()
	if err == nil && data != "" {
		var s checkout.Session
		if json.Unmarshal([]byte(data), &s) == nil {
			return &s
		}
	}
	return checkout.NewSession(userID)
}

func saveCheckout(ctx context.Context, s *checkout.Session) {
	data, _ := json.Marshal(s)
	database.Redis.Set(ctx, checkoutKey(s.UserID), data, checkoutTTL)
}

func checkoutResponse(s *checkout.Session, items []models.CartItem) gin.H {
	return gin.H{
		"step":        s.Step,
		"shipping":    s.Shipping,
		"notes":       s.Notes,
		"order_id":    s.OrderID,
		"error":       s.Error,
		"items":       items,
		"total_items": cart.TotalItems(items),
		"total_price": cart.TotalPrice(items),
	}
}

// GET /api/checkout
func GetCheckout(c *gin.Context) {
	userID := c.GetString("user_id")
	ctx := c.Request.Context()

	s := loadCheckout(ctx, userID)
	c.JSON(http.StatusOK, checkoutResponse(s, loadCart(ctx, userID)))
}

// POST /api/checkout/continue
func ContinueCheckout(c *gin.Context) {
	userID := c.GetString("user_id")
	ctx := c.Request.Context()

	var input struct {
		Shipping models.ShippingAddress `json:"shipping"`
		Notes    string                 `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	s := loadCheckout(ctx, userID)
	items := loadCart(ctx, userID)

	if errs := s.Continue(cart.TotalItems(items), input.Shipping, input.Notes); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	saveCheckout(ctx, s)
	c.JSON(http.StatusOK, checkoutResponse(s, items))
}

// POST /api/checkout/back
func BackCheckout(c *gin.Context) {
	userID := c.GetString("user_id")
	ctx := c.Request.Context()

	s := loadCheckout(ctx, userID)
	s.Back()
	saveCheckout(ctx, s)

	c.JSON(http.StatusOK, checkoutResponse(s, loadCart(ctx, userID)))
}

// POST /api/checkout/retry
func RetryCheckout(c *gin.Context) {
	userID := c.GetString("user_id")
	ctx := c.Request.Context()

	s := loadCheckout(ctx, userID)
	if !s.Retry() {
		c.JSON(http.StatusConflict, gin.H{"error": "Nothing to retry"})
		return
	}
	saveCheckout(ctx, s)

	c.JSON(http.StatusOK, checkoutResponse(s, loadCart(ctx, userID)))
}

// POST /api/checkout/submit
// Paiement à la livraison : la soumission enregistre la commande et vide
// le panier, aucun prestataire de paiement n'est appelé.
func SubmitCheckout(c *gin.Context) {
	userID := c.GetString("user_id")
	ctx := c.Request.Context()

	s := loadCheckout(ctx, userID)
	if !s.BeginSubmit() {
		c.JSON(http.StatusConflict, gin.H{"error": "Checkout is not ready to submit"})
		return
	}
	saveCheckout(ctx, s)

	items := loadCart(ctx, userID)
	if len(items) == 0 {
		s.Fail("Cart is empty")
		saveCheckout(ctx, s)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	order := models.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		TotalAmount:     cart.TotalPrice(items),
		ShippingAddress: s.Shipping,
		Notes:           s.Notes,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now(),
	}
	for _, it := range items {
		order.Items = append(order.Items, models.OrderItem{
			OrderID:         order.ID,
			ProductID:       it.ProductID,
			ProductName:     it.Name,
			ProductImage:    it.ImageURL,
			Quantity:        it.Quantity,
			PriceAtPurchase: it.Price,
		})
	}

	if err := writeOrder(ctx, order); err != nil {
		log.Printf("❌ Écriture commande échouée pour %s: %v", userID, err)
		s.Fail("Failed to save order")
		saveCheckout(ctx, s)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save order"})
		return
	}

	// Commande en base : on vide le panier et on clôt le tunnel
	database.Redis.Del(ctx, cartKey(userID))
	database.Redis.Publish(ctx, "cart:sync:"+userID, "cleared")

	s.Complete(order.ID)
	saveCheckout(ctx, s)

	utils.LogAction(c, utils.ACTION_ORDER_CREATE, utils.RESOURCE_ORDER, order.ID, nil,
		gin.H{"total": order.TotalAmount, "items": len(order.Items)})

	// Confirmation par mail en arrière-plan, sans bloquer la réponse
	if email := c.GetString("email"); email != "" {
		go func(to string, o models.Order) {
			if err := utils.SendOrderConfirmationEmail(to, o); err != nil {
				log.Printf("⚠️ Envoi mail de confirmation échoué pour %s: %v", o.ID, err)
			}
		}(email, order)
	}

	log.Printf("🛒 Commande %s créée pour %s (%d articles)", order.ID, userID, len(order.Items))
	c.JSON(http.StatusCreated, gin.H{"order": order, "step": s.Step})
}

// writeOrder persiste la commande via orders.Write (avec compensation)
func writeOrder(ctx context.Context, order models.Order) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}
	return orders.Write(ctx, scyllaOrderStore{session}, order)
}

// scyllaOrderStore branche orders sur le keyspace orders
type scyllaOrderStore struct {
	session *gocql.Session
}

func (s scyllaOrderStore) InsertOrder(_ context.Context, order models.Order) error {
	return s.session.Query(`INSERT INTO orders (order_id, user_id, total_amount, full_name, phone,
		street_address, city, state, postal_code, notes, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.UserID, order.TotalAmount,
		order.ShippingAddress.FullName, order.ShippingAddress.Phone,
		order.ShippingAddress.StreetAddress, order.ShippingAddress.City,
		order.ShippingAddress.State, order.ShippingAddress.PostalCode,
		order.Notes, order.Status, order.CreatedAt).Exec()
}

func (s scyllaOrderStore) InsertUserIndex(_ context.Context, order models.Order) error {
	return s.session.Query(`INSERT INTO orders_by_user (user_id, created_at, order_id, total_amount, status)
		VALUES (?, ?, ?, ?, ?)`,
		order.UserID, order.CreatedAt, order.ID, order.TotalAmount, order.Status).Exec()
}

func (s scyllaOrderStore) InsertItem(_ context.Context, item models.OrderItem) error {
	return s.session.Query(`INSERT INTO order_items (order_id, product_id, product_name, product_image,
		quantity, price_at_purchase) VALUES (?, ?, ?, ?, ?, ?)`,
		item.OrderID, item.ProductID, item.ProductName, item.ProductImage,
		item.Quantity, item.PriceAtPurchase).Exec()
}

func (s scyllaOrderStore) DeleteOrder(_ context.Context, orderID string) error {
	return s.session.Query("DELETE FROM orders WHERE order_id = ?", orderID).Exec()
}

func (s scyllaOrderStore) DeleteUserIndex(_ context.Context, order models.Order) error {
	return s.session.Query("DELETE FROM orders_by_user WHERE user_id = ? AND created_at = ?",
		order.UserID, order.CreatedAt).Exec()
}

func (s scyllaOrderStore) DeleteItems(_ context.Context, orderID string) error {
	return s.session.Query("DELETE FROM order_items WHERE order_id = ?", orderID).Exec()
}
