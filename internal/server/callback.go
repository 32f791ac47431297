package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bazarlabs/paygate/internal/payment/callback"
)

// ResolveCallback
// GET /pay/callback/:method
//
// Providers redirect the shopper's browser here after the hosted payment
// page. The resolver turns the untrusted query parameters into a
// navigation outcome and the handler answers with a 302 to it.
func (s *Server) ResolveCallback(c *gin.Context) {
	cb := callback.Callback{
		Method: c.Param("method"),
		Params: c.Request.URL.Query(),
	}

	outcome, err := s.resolver.Resolve(c.Request.Context(), cb)
	if err != nil {
		// Context cancelled mid-verification: the shopper is gone and
		// the navigation is suppressed.
		s.log.Info("callback resolution suppressed", zap.Error(err))
		c.AbortWithStatus(http.StatusRequestTimeout)
		return
	}

	c.Redirect(http.StatusFound, outcome.Location)
}
