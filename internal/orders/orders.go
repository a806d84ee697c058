// Package orders persiste les commandes. L'écriture passe par une petite
// interface Store pour garder la compensation testable ; l'implémentation
// ScyllaDB est branchée dans les handlers.
package orders

import (
	"context"
	"log"

	"dukani_back_end/internal/models"
)

// Store : écritures et effacements nécessaires à la persistance d'une commande
type Store interface {
	InsertOrder(ctx context.Context, order models.Order) error
	InsertUserIndex(ctx context.Context, order models.Order) error
	InsertItem(ctx context.Context, item models.OrderItem) error
	DeleteOrder(ctx context.Context, orderID string) error
	DeleteUserIndex(ctx context.Context, order models.Order) error
	DeleteItems(ctx context.Context, orderID string) error
}

// Write insère la commande, son entrée d'historique et ses lignes.
// Un échec partiel est compensé : jamais de commande sans articles.
func Write(ctx context.Context, store Store, order models.Order) error {
	if err := store.InsertOrder(ctx, order); err != nil {
		return err
	}

	if err := store.InsertUserIndex(ctx, order); err != nil {
		compensate(ctx, store, order, false)
		return err
	}

	for _, item := range order.Items {
		if err := store.InsertItem(ctx, item); err != nil {
			compensate(ctx, store, order, true)
			return err
		}
	}

	return nil
}

// compensate efface les lignes déjà écrites après un échec partiel
func compensate(ctx context.Context, store Store, order models.Order, withIndex bool) {
	if err := store.DeleteOrder(ctx, order.ID); err != nil {
		log.Printf("⚠️ Compensation commande %s échouée (orders): %v", order.ID, err)
	}
	if withIndex {
		if err := store.DeleteUserIndex(ctx, order); err != nil {
			log.Printf("⚠️ Compensation commande %s échouée (orders_by_user): %v", order.ID, err)
		}
	}
	if err := store.DeleteItems(ctx, order.ID); err != nil {
		log.Printf("⚠️ Compensation commande %s échouée (order_items): %v", order.ID, err)
	}
}
