package httpapi

import (
	"context"
	"net/http"
	"time"

	"gst_compliance_service/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Server is the HTTP admin surface: the three manual job triggers, a health
// probe and the prometheus endpoint. It is not a user-facing API.
type Server struct {
	srv    *http.Server
	logger *logrus.Entry
}

func NewServer(
	addr string,
	adminToken string,
	reminders *app.ReminderService,
	compliance *app.ComplianceService,
	cleanup *app.CleanupService,
	logger *logrus.Entry,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	jobs := router.Group("/admin/jobs", TokenAuth(adminToken))
	jobs.POST("/gst-reminders", func(c *gin.Context) {
		count, err := reminders.Run(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"reminders_sent": count})
	})
	jobs.POST("/compliance-reminders", func(c *gin.Context) {
		count, err := compliance.Run(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"notifications_sent": count})
	})
	jobs.POST("/log-cleanup", func(c *gin.Context) {
		deleted, err := cleanup.Run(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"rows_deleted": deleted})
	})

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.WithField("addr", s.srv.Addr).Info("Admin HTTP server listening")
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down admin HTTP server")
	return s.srv.Shutdown(ctx)
}
