// Package httpapi exposes the signup and confirmation workflows over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"signupd/internal/logging"
	"signupd/internal/server/models"
)

// SignupService is the part of the services layer the HTTP surface needs.
type SignupService interface {
	Register(ctx context.Context, nickname, email, password, baseURL string) (*models.User, error)
	Confirm(ctx context.Context, token string) error
}

type Server struct {
	address string
	signup  SignupService
	logger  logging.Logger
}

func NewServer(address string, l logging.Logger, signup SignupService) *Server {
	return &Server{
		address: address,
		signup:  signup,
		logger:  l.With("component", "http_server"),
	}
}

// Routes builds the gin engine with all handlers and middleware installed.
// It is exported so tests can drive the full router without a listener.
func (s *Server) Routes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(s.requestID())
	r.Use(s.requestLogger())

	r.GET("/", s.handleSignupForm)
	r.POST("/signup", s.handleSignup)
	r.GET("/confirm", s.handleConfirm)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
