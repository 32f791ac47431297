package sslcommerz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bazarlabs/paygate/internal/backend"
	"github.com/bazarlabs/paygate/internal/config"
	"github.com/bazarlabs/paygate/internal/payment/adapters"
	"github.com/bazarlabs/paygate/internal/payment/domain"
)

func configuredDeps(client backend.Client) adapters.Deps {
	return adapters.Deps{
		Config: config.Config{SSLCommerz: config.SSLCommerzConfig{
			StoreID:       "store",
			StorePassword: "pw",
		}},
		Backend: client,
		Logger:  zap.NewNop(),
	}
}

func TestFactoryRequiresCredentials(t *testing.T) {
	_, err := NewFactory().New(adapters.Deps{
		Config:  config.Config{},
		Backend: &backend.MockClient{},
		Logger:  zap.NewNop(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestCreateForwardsCustomerFields(t *testing.T) {
	client := &backend.MockClient{}
	client.On("InitiateCardPayment", mock.Anything, backend.CardPaymentInput{
		Amount:          1200,
		CustomerName:    "Rahim",
		CustomerEmail:   "rahim@example.com",
		CustomerPhone:   "01811111111",
		CustomerAddress: "Dhaka",
		Reference:       "ORD-3",
	}).Return(&backend.CardPaymentResult{
		Success:       true,
		PaymentURL:    "https://sslcommerz.example/session",
		TransactionID: "CARD-1",
	}, nil)

	adapter, err := NewFactory().New(configuredDeps(client))
	require.NoError(t, err)

	resp := adapter.Create(context.Background(), domain.PaymentRequest{
		Amount:          1200,
		OrderID:         "ORD-3",
		CustomerName:    "Rahim",
		CustomerEmail:   "rahim@example.com",
		CustomerPhone:   "01811111111",
		CustomerAddress: "Dhaka",
	})

	assert.True(t, resp.Success)
	assert.Equal(t, "https://sslcommerz.example/session", resp.PaymentURL)
	client.AssertExpectations(t)
}

func TestCreateGatewayRejection(t *testing.T) {
	client := &backend.MockClient{}
	client.On("InitiateCardPayment", mock.Anything, mock.Anything).
		Return(&backend.CardPaymentResult{Success: false}, nil)

	adapter, err := NewFactory().New(configuredDeps(client))
	require.NoError(t, err)

	resp := adapter.Create(context.Background(), domain.PaymentRequest{Amount: 1, OrderID: "O1"})
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestValidateCollapsesErrorsToFalse(t *testing.T) {
	client := &backend.MockClient{}
	client.On("ValidateCardPayment", mock.Anything, "REF-OK").Return(true, nil)
	client.On("ValidateCardPayment", mock.Anything, "REF-ERR").Return(false, errors.New("down"))

	adapter, err := NewFactory().New(configuredDeps(client))
	require.NoError(t, err)

	validator := adapter.(domain.Validator)
	assert.True(t, validator.Validate(context.Background(), "REF-OK"))
	assert.False(t, validator.Validate(context.Background(), "REF-ERR"))
}
