// Package server implements the chat backend. The request/response contract
// is implemented once and mounted on two deployment targets: a gin router
// for standalone hosting and a plain http.Handler for serverless function
// hosts. Both behave identically from the caller's perspective.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cennetul/muhafiz-go/internal/config"
	"github.com/cennetul/muhafiz-go/internal/llm"
	"github.com/cennetul/muhafiz-go/internal/persona"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// API holds the handler dependencies. It is stateless across requests; each
// request builds its own ephemeral model conversation.
type API struct {
	completer llm.Completer
	persona   persona.Persona
	logger    *slog.Logger
	timeout   time.Duration
}

// New creates the chat API.
func New(completer llm.Completer, p persona.Persona, logger *slog.Logger, timeout time.Duration) *API {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &API{
		completer: completer,
		persona:   p,
		logger:    logger,
		timeout:   timeout,
	}
}

// Router returns the gin engine for the standalone server target.
func (a *API) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.HandleMethodNotAllowed = true

	// The widget is embedded on third-party sites, so the policy accepts
	// requests from any origin. Methods and headers mirror the published
	// contract even though only POST and OPTIONS are actually served.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS", "PATCH", "DELETE", "POST", "PUT"},
		AllowHeaders:     allowedHeaders,
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	router.POST("/api/chat", a.ginChat)
	// The cors middleware only answers preflights carrying an Origin
	// header; this route keeps OPTIONS without one on the same contract
	// as the plain handler.
	router.OPTIONS("/api/chat", func(c *gin.Context) {
		writeCORSHeaders(c.Writer)
		c.Status(http.StatusNoContent)
	})
	router.GET("/ws", a.serveWS)

	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}

func (a *API) ginChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Malformed bodies get the same persona apology as model failures;
		// technical detail stays in the log.
		a.logger.Error("malformed chat request", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse(a.persona))
		return
	}

	resp, status := a.respond(c.Request.Context(), req)
	c.JSON(status, resp)
}

// HTTPServer builds the http.Server around the gin target with timeouts
// sized for LLM turns.
func (a *API) HTTPServer(cfg config.Config) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      a.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: a.timeout + 10*time.Second, // long for LLM responses
		IdleTimeout:  120 * time.Second,
	}
}
