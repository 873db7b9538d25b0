package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/taiwoajasa245/sabbath-lesson-api/internal/database"
	"github.com/taiwoajasa245/sabbath-lesson-api/internal/language"
	"github.com/taiwoajasa245/sabbath-lesson-api/internal/lesson"
	"github.com/taiwoajasa245/sabbath-lesson-api/internal/logger"
	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/config"
	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/validation"
)

type Server struct {
	port            string
	shutdownTimeout time.Duration
	allowedOrigins  []string
	db              database.Service
	log             *logger.Logger
	handler         http.Handler

	languageHandler language.LanguageHandler
	lessonHandler   lesson.LessonHandler
}

// NewServer constructs the app server with all dependencies injected.
func NewServer(db database.Service, cfg *config.Config, log *logger.Logger) *Server {
	validator := validation.MustNewValidator()

	languageRepo := language.NewRepository(db)
	lessonRepo := lesson.NewRepository(db, languageRepo)

	languageService := language.NewLanguageService(languageRepo, validator, log)
	lessonService := lesson.NewLessonService(lessonRepo, languageRepo, validator, log)

	s := &Server{
		port:            cfg.Port,
		shutdownTimeout: cfg.ShutdownTimeout,
		allowedOrigins:  cfg.CORSAllowedOrigins,
		db:              db,
		log:             log,
		languageHandler: language.NewLanguageHandler(languageService, log),
		lessonHandler:   lesson.NewLessonHandler(lessonService, log),
	}

	s.handler = s.RegisterRoutes()
	return s
}

// HTTPServer returns the actual *http.Server instance. Request contexts carry
// the values of ctx but not its cancellation; Shutdown ends them.
func (s *Server) HTTPServer(ctx context.Context) *http.Server {
	base := context.WithoutCancel(ctx)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", s.port),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return base
		},
	}
}

// Serve listens until ctx is cancelled, then drains in-flight requests for up
// to the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context) error {
	srv := s.HTTPServer(ctx)
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}
	return s.serve(ctx, srv, ln)
}

func (s *Server) serve(ctx context.Context, srv *http.Server, ln net.Listener) error {
	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		s.log.Info("http server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		s.log.Info("shutting down http server", "timeout", s.shutdownTimeout.String())
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
