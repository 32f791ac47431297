package nagad

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
		Config: config.Config{Nagad: config.NagadConfig{
			MerchantID:  "M1",
			MerchantKey: "K1",
		}},
		Backend: client,
		Logger:  zap.NewNop(),
	}
}

func TestFactoryRequiresCredentials(t *testing.T) {
	_, err := NewFactory().New(adapters.Deps{
		Config:  config.Config{Nagad: config.NagadConfig{MerchantID: "M1"}},
		Backend: &backend.MockClient{},
		Logger:  zap.NewNop(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestCreateReturnsRedirect(t *testing.T) {
	client := &backend.MockClient{}
	client.On("CreatePayment", mock.Anything, backend.CreatePaymentInput{
		Amount:    99.5,
		Method:    "nagad",
		Reference: "ORD-2",
	}).Return(&backend.CreatePaymentResult{
		RedirectURL: "https://nagad.example/pay",
		PaymentID:   "NP-7",
	}, nil)

	adapter, err := NewFactory().New(configuredDeps(client))
	require.NoError(t, err)

	resp := adapter.Create(context.Background(), domain.PaymentRequest{Amount: 99.5, OrderID: "ORD-2"})
	assert.True(t, resp.Success)
	assert.Equal(t, "https://nagad.example/pay", resp.PaymentURL)
	assert.Equal(t, "NP-7", resp.TransactionID)
}

func TestVerify(t *testing.T) {
	t.Run("confirmed", func(t *testing.T) {
		client := &backend.MockClient{}
		client.On("VerifyNagadPayment", mock.Anything, "REF1").
			Return(&backend.VerifyPaymentResult{Success: true, TransactionID: "TX-9"}, nil)

		adapter, err := NewFactory().New(configuredDeps(client))
		require.NoError(t, err)

		resp := adapter.(domain.Verifier).Verify(context.Background(), "REF1")
		assert.True(t, resp.Success)
		assert.Equal(t, "TX-9", resp.TransactionID)
	})

	t.Run("unconfirmed", func(t *testing.T) {
		client := &backend.MockClient{}
		client.On("VerifyNagadPayment", mock.Anything, "REF2").
			Return(&backend.VerifyPaymentResult{Success: false}, nil)

		adapter, err := NewFactory().New(configuredDeps(client))
		require.NoError(t, err)

		resp := adapter.(domain.Verifier).Verify(context.Background(), "REF2")
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("transport failure folds", func(t *testing.T) {
		client := &backend.MockClient{}
		client.On("VerifyNagadPayment", mock.Anything, "REF3").
			Return(nil, errors.New("backend down"))

		adapter, err := NewFactory().New(configuredDeps(client))
		require.NoError(t, err)

		resp := adapter.(domain.Verifier).Verify(context.Background(), "REF3")
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("is repeatable", func(t *testing.T) {
		client := &backend.MockClient{}
		client.On("VerifyNagadPayment", mock.Anything, "REF4").
			Return(&backend.VerifyPaymentResult{Success: true, TransactionID: "TX-4"}, nil).
			Times(2)

		adapter, err := NewFactory().New(configuredDeps(client))
		require.NoError(t, err)

		verifier := adapter.(domain.Verifier)
		first := verifier.Verify(context.Background(), "REF4")
		second := verifier.Verify(context.Background(), "REF4")

		assert.Equal(t, first.Success, second.Success)
		assert.Equal(t, first.TransactionID, second.TransactionID)
		client.AssertExpectations(t)
	})
}
