package server

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	checkoutdomain "github.com/bazarlabs/paygate/internal/checkout/domain"
	"github.com/bazarlabs/paygate/internal/config"
	"github.com/bazarlabs/paygate/internal/observability"
	"github.com/bazarlabs/paygate/internal/payment/callback"
	paymentdomain "github.com/bazarlabs/paygate/internal/payment/domain"
)

type Params struct {
	fx.In

	Cfg      config.Config
	Logger   *zap.Logger
	Checkout checkoutdomain.Service
	Gateway  paymentdomain.Gateway
	Resolver *callback.Resolver
	Guard    *InFlightGuard
	Metrics  *observability.Metrics
	Redis    *redis.Client
}

type Server struct {
	engine   *gin.Engine
	cfg      config.Config
	log      *zap.Logger
	checkout checkoutdomain.Service
	gateway  paymentdomain.Gateway
	resolver *callback.Resolver
	guard    *InFlightGuard
	metrics  *observability.Metrics
	redis    *redis.Client
}

func NewServer(p Params) *Server {
	if os.Getenv("APP_ENV") != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:   engine,
		cfg:      p.Cfg,
		log:      p.Logger.Named("server"),
		checkout: p.Checkout,
		gateway:  p.Gateway,
		resolver: p.Resolver,
		guard:    p.Guard,
		metrics:  p.Metrics,
		redis:    p.Redis,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	api.POST("/payments", s.CreatePayment)
	api.POST("/payments/:id/execute", s.ExecutePayment)
	api.POST("/payments/:id/verify", s.VerifyPayment)
	api.GET("/payments/methods", s.ListPaymentMethods)

	s.engine.GET("/pay/callback/:method", s.ResolveCallback)
	s.engine.GET("/readyz", s.GetReadiness)
	s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

var Module = fx.Module("server",
	fx.Provide(NewInFlightGuard),
	fx.Provide(NewServer),
	fx.Invoke(Start),
)

func Start(lc fx.Lifecycle, s *Server, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{Addr: cfg.ListenAddr, Handler: s.engine}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.ListenAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
