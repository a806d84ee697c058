package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dukani_back_end/internal/models"
)

func validAddr() models.ShippingAddress {
	return models.ShippingAddress{
		FullName:      "Okello James",
		Phone:         "+256 700 123456",
		StreetAddress: "Plot 12 Kampala Road",
		City:          "Kampala",
	}
}

func TestContinueHappyPath(t *testing.T) {
	s := NewSession("u1")
	assert.Equal(t, StepCart, s.Step)

	require.Nil(t, s.Continue(2, models.ShippingAddress{}, ""))
	assert.Equal(t, StepShipping, s.Step)

	require.Nil(t, s.Continue(2, validAddr(), "call on arrival"))
	assert.Equal(t, StepReview, s.Step)
	assert.Equal(t, "Kampala", s.Shipping.City)
	assert.Equal(t, "call on arrival", s.Notes)

	require.True(t, s.BeginSubmit())
	assert.Equal(t, StepSubmitting, s.Step)

	s.Complete("order-1")
	assert.Equal(t, StepSuccess, s.Step)
	assert.Equal(t, "order-1", s.OrderID)
}

func TestContinueBlockedOnEmptyCart(t *testing.T) {
	s := NewSession("u1")
	errs := s.Continue(0, models.ShippingAddress{}, "")
	require.Len(t, errs, 1)
	assert.Equal(t, StepCart, s.Step)
}

func TestShippingValidationFieldErrors(t *testing.T) {
	s := NewSession("u1")
	require.Nil(t, s.Continue(1, models.ShippingAddress{}, ""))

	errs := s.Continue(1, models.ShippingAddress{FullName: "  ", City: "Gulu"}, "")
	require.Len(t, errs, 3)
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	assert.True(t, fields["fullName"])
	assert.True(t, fields["phone"])
	assert.True(t, fields["streetAddress"])
	assert.False(t, fields["city"])
	assert.Equal(t, StepShipping, s.Step, "une validation en échec ne doit pas faire avancer l'étape")
}

func TestOptionalFieldsNotRequired(t *testing.T) {
	addr := validAddr()
	addr.State = ""
	addr.PostalCode = ""
	assert.Empty(t, ValidateShipping(addr))
}

func TestBackNavigation(t *testing.T) {
	s := NewSession("u1")
	s.Continue(1, models.ShippingAddress{}, "")
	s.Continue(1, validAddr(), "")
	require.Equal(t, StepReview, s.Step)

	s.Back()
	assert.Equal(t, StepShipping, s.Step)
	s.Back()
	assert.Equal(t, StepCart, s.Step)
	s.Back()
	assert.Equal(t, StepCart, s.Step)
}

func TestSubmitOnlyFromReview(t *testing.T) {
	s := NewSession("u1")
	assert.False(t, s.BeginSubmit())
	s.Continue(1, models.ShippingAddress{}, "")
	assert.False(t, s.BeginSubmit())
}

func TestFailAndRetryKeepsAddress(t *testing.T) {
	s := NewSession("u1")
	s.Continue(1, models.ShippingAddress{}, "")
	s.Continue(1, validAddr(), "")
	s.BeginSubmit()
	s.Fail("database unavailable")

	assert.Equal(t, StepFailed, s.Step)
	assert.Equal(t, "database unavailable", s.Error)

	require.True(t, s.Retry())
	assert.Equal(t, StepReview, s.Step)
	assert.Empty(t, s.Error)
	assert.Equal(t, validAddr(), s.Shipping, "l'adresse saisie doit survivre à l'échec")

	assert.False(t, s.Retry())
}

func TestRetryRecoversStuckSubmitting(t *testing.T) {
	// une session interrompue entre submitting et son issue ne doit pas
	// rester bloquée jusqu'à l'expiration du TTL
	s := NewSession("u1")
	s.Continue(1, models.ShippingAddress{}, "")
	s.Continue(1, validAddr(), "")
	require.True(t, s.BeginSubmit())
	require.Equal(t, StepSubmitting, s.Step)

	require.True(t, s.Retry())
	assert.Equal(t, StepReview, s.Step)
	assert.Equal(t, validAddr(), s.Shipping)
	require.True(t, s.BeginSubmit(), "la session rattrapée doit pouvoir resoumettre")
}
