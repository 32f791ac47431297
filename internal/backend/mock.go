package backend

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClient is a testify substitute for Client, shared by adapter and
// service tests.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) CreatePayment(ctx context.Context, input CreatePaymentInput) (*CreatePaymentResult, error) {
	args := m.Called(ctx, input)
	if res := args.Get(0); res != nil {
		return res.(*CreatePaymentResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClient) ExecutePayment(ctx context.Context, paymentID, method string) (*ExecutePaymentResult, error) {
	args := m.Called(ctx, paymentID, method)
	if res := args.Get(0); res != nil {
		return res.(*ExecutePaymentResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClient) VerifyNagadPayment(ctx context.Context, paymentRefID string) (*VerifyPaymentResult, error) {
	args := m.Called(ctx, paymentRefID)
	if res := args.Get(0); res != nil {
		return res.(*VerifyPaymentResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClient) InitiateCardPayment(ctx context.Context, input CardPaymentInput) (*CardPaymentResult, error) {
	args := m.Called(ctx, input)
	if res := args.Get(0); res != nil {
		return res.(*CardPaymentResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockClient) ValidateCardPayment(ctx context.Context, referenceID string) (bool, error) {
	args := m.Called(ctx, referenceID)
	return args.Bool(0), args.Error(1)
}
