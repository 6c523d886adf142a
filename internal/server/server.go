package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abdalrahmangwish/qr/internal/barcode"
	"github.com/abdalrahmangwish/qr/internal/config"
	"github.com/abdalrahmangwish/qr/internal/model"
	"github.com/abdalrahmangwish/qr/internal/processor"
)

// Server represents the HTTP API server
type Server struct {
	cfg      *config.Server
	log      *zap.Logger
	router   *gin.Engine
	http     *http.Server
	pipeline *processor.Pipeline
	strict   *processor.Pipeline
}

// NewServer creates a new API server. A nil logger disables request
// logging.
func NewServer(cfg *config.Server, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(log))

	s := &Server{
		cfg:      cfg,
		log:      log,
		router:   router,
		pipeline: processor.NewPipeline(),
		strict:   processor.NewPipeline(processor.WithStrictDates()),
	}
	s.http = &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/encode", s.handleEncode)
		v1.POST("/validate", s.handleValidate)
		v1.POST("/image", s.handleImage)
	}
}

// Run starts the HTTP server and blocks until it stops. A server
// stopped by Shutdown reports no error.
func (s *Server) Run() error {
	s.log.Info("starting server", zap.String("address", s.cfg.Address))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server without dropping in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) pipelineFor(strict bool) *processor.Pipeline {
	if strict {
		return s.strict
	}
	return s.pipeline
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleEncode(c *gin.Context) {
	var req EncodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	fields, err := req.fields()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := s.pipelineFor(req.StrictDates).Process(fields)
	if result.Error != nil {
		s.failure(c, result.Error)
		return
	}

	c.JSON(http.StatusOK, EncodeResponse{
		Base64:      result.Base64,
		PayloadSize: len(result.Payload),
		Fields:      result.Fields,
	})
}

func (s *Server) handleValidate(c *gin.Context) {
	var req EncodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	fields, err := req.fields()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err = s.pipelineFor(req.StrictDates).Validate(fields)
	if err == nil {
		c.JSON(http.StatusOK, ValidateResponse{Valid: true})
		return
	}

	resp := ValidateResponse{Valid: false}
	var missing *model.MissingFieldsError
	var violations model.ValidationErrors
	switch {
	case errors.As(err, &missing):
		// Missing names are also reported as required-rule entries so
		// clients can consume one uniform error list.
		resp.Missing = missing.Fields
		resp.Errors = toFieldErrors(missing.AsValidationErrors())
	case errors.As(err, &violations):
		resp.Errors = toFieldErrors(violations)
	}
	c.JSON(http.StatusUnprocessableEntity, resp)
}

func (s *Server) handleImage(c *gin.Context) {
	var req ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	level := barcode.DefaultLevel
	if req.Level != "" {
		var err error
		level, err = barcode.ParseLevel(req.Level)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	fields, err := req.fields()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := s.pipelineFor(req.StrictDates).Process(fields)
	if result.Error != nil {
		s.failure(c, result.Error)
		return
	}

	png, err := barcode.PNG(result.Base64, level, req.Size)
	if err != nil {
		s.log.Error("QR rendering failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// failure maps pipeline errors onto HTTP statuses: bad field input is
// 422, a length-framing violation is a server-side defect and reports
// as 500.
func (s *Server) failure(c *gin.Context, err error) {
	var missing *model.MissingFieldsError
	var violations model.ValidationErrors
	var encoding *model.EncodingError

	switch {
	case errors.As(err, &missing):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   err.Error(),
			"missing": missing.Fields,
		})
	case errors.As(err, &violations):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  err.Error(),
			"errors": toFieldErrors(violations),
		})
	case errors.As(err, &encoding):
		s.log.Error("payload construction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func toFieldErrors(violations model.ValidationErrors) []FieldError {
	out := make([]FieldError, len(violations))
	for i, v := range violations {
		out[i] = FieldError{
			Field:   v.Field,
			Rule:    v.Rule,
			Value:   v.Value,
			Message: v.Message,
		}
	}
	return out
}

// Middleware

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", c.GetString("request_id")),
		)
	}
}
