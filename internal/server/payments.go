package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	checkoutdomain "github.com/bazarlabs/paygate/internal/checkout/domain"
	paymentdomain "github.com/bazarlabs/paygate/internal/payment/domain"
)

type customerPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type createPaymentRequest struct {
	OrderID     string           `json:"order_id" binding:"required"`
	Method      string           `json:"method" binding:"required"`
	Amount      float64          `json:"amount" binding:"required,gt=0"`
	Customer    *customerPayload `json:"customer"`
	Description string           `json:"description"`
}

// initiateResponse mirrors InitiateResult on the wire. redirect_url is a
// legacy alias of payment_url; both always carry the same value.
type initiateResponse struct {
	Success     bool   `json:"success"`
	PaymentID   string `json:"payment_id,omitempty"`
	PaymentURL  string `json:"payment_url,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
	Error       string `json:"error,omitempty"`
}

func toInitiateResponse(result *checkoutdomain.InitiateResult) initiateResponse {
	return initiateResponse{
		Success:     result.Success,
		PaymentID:   result.PaymentID,
		PaymentURL:  result.PaymentURL,
		RedirectURL: result.PaymentURL,
		Error:       result.Error,
	}
}

// CreatePayment
// POST /api/payments
func (s *Server) CreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid request")
		return
	}

	ctx := c.Request.Context()

	acquired, err := s.guard.Acquire(ctx, req.OrderID)
	if err != nil {
		// The backend still enforces idempotency on the order id, so a
		// degraded guard fails open rather than blocking checkout.
		s.log.Warn("in-flight guard unavailable", zap.Error(err))
	} else if !acquired {
		respondFailure(c, http.StatusConflict, "payment already in progress for this order")
		return
	}

	input := checkoutdomain.InitiateInput{
		OrderID:     req.OrderID,
		Method:      req.Method,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.Customer != nil {
		input.Customer = &checkoutdomain.CustomerInfo{
			Name:    req.Customer.Name,
			Email:   req.Customer.Email,
			Phone:   req.Customer.Phone,
			Address: req.Customer.Address,
		}
	}

	result := s.checkout.InitiatePayment(ctx, input)
	if !result.Success && err == nil {
		// A failed initiation releases the slot so the shopper can retry.
		if relErr := s.guard.Release(ctx, req.OrderID); relErr != nil {
			s.log.Warn("in-flight guard release failed", zap.Error(relErr))
		}
	}

	c.JSON(http.StatusOK, toInitiateResponse(result))
}

type executePaymentRequest struct {
	Method string `json:"method" binding:"required"`
}

// ExecutePayment
// POST /api/payments/:id/execute
func (s *Server) ExecutePayment(c *gin.Context) {
	var req executePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid request")
		return
	}

	method, ok := paymentdomain.ParseMethod(req.Method)
	if !ok {
		respondFailure(c, http.StatusBadRequest, "unknown payment method")
		return
	}

	resp := s.gateway.ExecutePayment(c.Request.Context(), method, c.Param("id"))
	c.JSON(http.StatusOK, resp)
}

type verifyPaymentRequest struct {
	Method string `json:"method"`
}

// VerifyPayment
// POST /api/payments/:id/verify
func (s *Server) VerifyPayment(c *gin.Context) {
	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "invalid request")
		return
	}

	verified := s.checkout.VerifyPayment(c.Request.Context(), c.Param("id"), req.Method)
	respondData(c, gin.H{"verified": verified})
}

// ListPaymentMethods
// GET /api/payments/methods
func (s *Server) ListPaymentMethods(c *gin.Context) {
	respondData(c, s.gateway.AvailableMethods())
}
