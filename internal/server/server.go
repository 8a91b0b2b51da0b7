package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/config"
	itemdomain "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/masteritem/domain"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/metrics"
	"github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/ratelimit"
	scandomain "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/scan/domain"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger, registry *prometheus.Registry, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(metrics.GinMiddleware(httpMetrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return r
}

type Server struct {
	engine        *gin.Engine
	cfg           config.Config
	log           *zap.Logger
	scanSvc       scandomain.Service
	itemSvc       itemdomain.Service
	ingestLimiter *ratelimit.ScanIngestLimiter
	scanMetrics   *metrics.ScanMetrics
}

type ServerParams struct {
	fx.In

	Gin           *gin.Engine
	Cfg           config.Config
	Log           *zap.Logger
	ScanSvc       scandomain.Service
	ItemSvc       itemdomain.Service
	IngestLimiter *ratelimit.ScanIngestLimiter `optional:"true"`
	ScanMetrics   *metrics.ScanMetrics         `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:        p.Gin,
		cfg:           p.Cfg,
		log:           p.Log,
		scanSvc:       p.ScanSvc,
		itemSvc:       p.ItemSvc,
		ingestLimiter: p.IngestLimiter,
		scanMetrics:   p.ScanMetrics,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api/v1")

	// -------- Scanned items --------
	scans := api.Group("/scanned-items")
	scans.GET("", s.ListScans)
	scans.POST("", s.ScanIngestRateLimit(), s.IngestScans)
	scans.GET("/invoice-view", s.InvoiceView)
	scans.POST("/check-duplicate", s.CheckDuplicates)
	scans.PUT("/invoice", s.RenameInvoice)
	scans.GET("/:id", s.GetScan)
	scans.DELETE("/:id", s.DeleteScan)
	scans.PUT("/:id/barcode", s.UpdateScanBarcode)
	scans.PUT("/:id/invoice", s.UpdateScanInvoice)

	// -------- Master items --------
	items := api.Group("/master-items")
	items.GET("", s.ListMasterItems)
	items.POST("", s.StoreMasterItems)
	items.GET("/:id", s.GetMasterItem)
	items.PUT("/:id", s.UpdateMasterItemName)
	items.DELETE("/:id", s.DeleteMasterItem)
}

func run(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
