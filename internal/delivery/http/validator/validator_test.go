package validator

import (
	"errors"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderInputWithAddress(address entity.ShippingAddress) *usecase.CreateOrderInput {
	return &usecase.CreateOrderInput{
		Items:           []usecase.OrderItemInput{{ProductID: uuid.New(), Quantity: 1}},
		ShippingAddress: address,
		PaymentMethod:   entity.PaymentMethodStripe,
	}
}

func TestValidate_ShippingAddressRequiresEveryField(t *testing.T) {
	v := New()

	// A street alone is not a deliverable address.
	err := v.Validate(orderInputWithAddress(entity.ShippingAddress{Street: "1 Main St"}))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestValidate_CompleteShippingAddressPasses(t *testing.T) {
	v := New()

	err := v.Validate(orderInputWithAddress(entity.ShippingAddress{
		Street:  "1 Main St",
		City:    "Springfield",
		State:   "IL",
		ZipCode: "62701",
		Country: "US",
	}))

	assert.NoError(t, err)
}
