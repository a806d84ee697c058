// Package cart contient les réducteurs purs du panier : toute mutation passe
// par ces fonctions qui renvoient un nouvel état, la persistance (Redis) reste
// dans la couche handler.
package cart

import "dukani_back_end/internal/models"

// Add incrémente la quantité si le produit est déjà présent, sinon l'insère.
// qty <= 0 est traité comme 1.
func Add(items []models.CartItem, item models.CartItem, qty int) []models.CartItem {
	if qty <= 0 {
		qty = 1
	}

	result := make([]models.CartItem, len(items))
	copy(result, items)

	for i := range result {
		if result[i].ProductID == item.ProductID {
			result[i].Quantity += qty
			return result
		}
	}

	item.Quantity = qty
	return append(result, item)
}

// UpdateQuantity fixe la quantité si qty > 0, sinon retire l'article.
// Une quantité nulle n'est jamais stockée.
func UpdateQuantity(items []models.CartItem, productID string, qty int) []models.CartItem {
	if qty <= 0 {
		return Remove(items, productID)
	}

	result := make([]models.CartItem, len(items))
	copy(result, items)

	for i := range result {
		if result[i].ProductID == productID {
			result[i].Quantity = qty
			break
		}
	}
	return result
}

// Remove supprime l'article du panier
func Remove(items []models.CartItem, productID string) []models.CartItem {
	result := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if it.ProductID != productID {
			result = append(result, it)
		}
	}
	return result
}

// TotalItems = somme des quantités
func TotalItems(items []models.CartItem) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// TotalPrice = somme des prix × quantités
func TotalPrice(items []models.CartItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
