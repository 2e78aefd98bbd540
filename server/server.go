package server

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"

	"github.com/projectdragon/dragon/internal/config"
	"github.com/projectdragon/dragon/internal/dragon"
	"github.com/projectdragon/dragon/internal/logger"
	"github.com/projectdragon/dragon/internal/mail"
	"github.com/projectdragon/dragon/internal/store"
	"github.com/projectdragon/dragon/internal/token"
)

// Server is the Project Dragon web server.
type Server struct {
	cfg     *config.Config
	users   store.UserStore
	tokens  *token.Service
	mailer  mail.Mailer
	dragons *dragon.Client
	db      *sql.DB
	echo    *echo.Echo
}

// New creates a server backed by Postgres and Resend.
func New(cfg *config.Config) (*Server, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	s := NewWith(cfg, store.NewPostgresStore(db), mail.NewResendMailer(cfg.ResendAPIKey, cfg.MailFrom))
	s.db = db
	return s, nil
}

// NewWith creates a server with explicit collaborators. Tests use it to swap
// in an in-memory store and a fake mailer.
func NewWith(cfg *config.Config, users store.UserStore, mailer mail.Mailer) *Server {
	s := &Server{
		cfg:     cfg,
		users:   users,
		tokens:  token.NewService(cfg.JWTSecret),
		mailer:  mailer,
		dragons: dragon.NewClient(cfg.DragonAPIURL),
	}

	s.setupEcho()

	return s
}

func (s *Server) setupEcho() {
	e := echo.New()
	e.HideBanner = true

	// Request/response logging
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			err := next(c)

			res := c.Response()
			logger.Info("HTTP request",
				logger.F("method", req.Method),
				logger.F("uri", req.RequestURI),
				logger.F("status", res.Status),
				logger.F("duration", time.Since(start).String()))

			return err
		}
	})

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	// Health check
	e.GET("/health", s.handleHealth)

	// Auth endpoints
	auth := e.Group("/api/auth")
	auth.POST("/signup", s.handleSignup)
	auth.POST("/signin", s.handleSignin)
	auth.POST("/send-magic-link", s.handleSendMagicLink)
	auth.GET("/verify-magic-link", s.handleVerifyMagicLink)

	// Dragon API, session required
	api := e.Group("/api/dragons")
	api.Use(s.requireSession)
	api.GET("", s.handleDragonList)
	api.GET("/:id", s.handleDragonDetail)
	api.DELETE("/:id", s.handleDragonDelete)

	// Pages. The public group bounces authenticated users to /home, the
	// private group bounces everyone else back to the login page.
	public := e.Group("")
	public.Use(s.publicPage)
	public.GET("/", s.handleLoginPage)

	private := e.Group("")
	private.Use(s.privatePage)
	private.GET("/home", s.handleHomePage)
	private.GET("/dragon/:id", s.handleDragonPage)

	s.echo = e
}

// Close closes the database connection
func (s *Server) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	return s.echo
}

// Start starts the server
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
