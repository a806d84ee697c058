// Package checkout implémente la machine à états du tunnel de commande.
// L'état est sérialisé en JSON dans Redis par la couche handler.
package checkout

import (
	"strings"

	"dukani_back_end/internal/models"
)

type Step string

const (
	StepCart       Step = "cart"
	StepShipping   Step = "shipping"
	StepReview     Step = "review"
	StepSubmitting Step = "submitting"
	StepSuccess    Step = "success"
	StepFailed     Step = "failed"
)

// Session représente un passage en caisse en cours pour un utilisateur
type Session struct {
	UserID   string                 `json:"user_id"`
	Step     Step                   `json:"step"`
	Shipping models.ShippingAddress `json:"shipping"`
	Notes    string                 `json:"notes"`
	OrderID  string                 `json:"order_id,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

// NewSession démarre le tunnel à l'étape panier
func NewSession(userID string) *Session {
	return &Session{UserID: userID, Step: StepCart}
}

// FieldError : erreur de validation rattachée à un champ du formulaire
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateShipping contrôle les champs obligatoires de l'adresse de livraison.
// state et postalCode restent optionnels.
func ValidateShipping(addr models.ShippingAddress) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(addr.FullName) == "" {
		errs = append(errs, FieldError{Field: "fullName", Message: "Full name is required"})
	}
	if strings.TrimSpace(addr.Phone) == "" {
		errs = append(errs, FieldError{Field: "phone", Message: "Phone number is required"})
	}
	if strings.TrimSpace(addr.StreetAddress) == "" {
		errs = append(errs, FieldError{Field: "streetAddress", Message: "Street address is required"})
	}
	if strings.TrimSpace(addr.City) == "" {
		errs = append(errs, FieldError{Field: "city", Message: "City is required"})
	}
	return errs
}

// Continue avance d'une étape. L'avancée cart→shipping exige un panier non
// vide, shipping→review une adresse valide. Renvoie les erreurs de champ
// bloquantes, ou nil si la transition a eu lieu.
func (s *Session) Continue(cartItems int, addr models.ShippingAddress, notes string) []FieldError {
	switch s.Step {
	case StepCart:
		if cartItems == 0 {
			return []FieldError{{Field: "cart", Message: "Cart is empty"}}
		}
		s.Step = StepShipping
	case StepShipping:
		if errs := ValidateShipping(addr); len(errs) > 0 {
			return errs
		}
		s.Shipping = addr
		s.Notes = notes
		s.Step = StepReview
	}
	return nil
}

// Back recule d'une étape ; sans effet ailleurs que shipping/review
func (s *Session) Back() {
	switch s.Step {
	case StepShipping:
		s.Step = StepCart
	case StepReview:
		s.Step = StepShipping
	}
}

// BeginSubmit passe en submitting ; seule l'étape review peut soumettre
func (s *Session) BeginSubmit() bool {
	if s.Step != StepReview {
		return false
	}
	s.Step = StepSubmitting
	return true
}

// Complete termine la soumission avec succès
func (s *Session) Complete(orderID string) {
	s.Step = StepSuccess
	s.OrderID = orderID
	s.Error = ""
}

// Fail termine la soumission sur échec ; l'adresse saisie est conservée
// pour permettre une nouvelle tentative depuis review
func (s *Session) Fail(reason string) {
	s.Step = StepFailed
	s.Error = reason
}

// Retry ramène un tunnel échoué à l'étape review. Une session restée
// bloquée en submitting (interruption avant l'issue) se rattrape pareil,
// sinon elle serait prisonnière jusqu'à l'expiration du TTL Redis.
func (s *Session) Retry() bool {
	if s.Step != StepFailed && s.Step != StepSubmitting {
		return false
	}
	s.Step = StepReview
	s.Error = ""
	return true
}
