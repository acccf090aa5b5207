package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/abhisek/edostudy/internal/config"
	"github.com/abhisek/edostudy/internal/observability"
	"github.com/abhisek/edostudy/internal/platform/logger"
)

type RouterConfig struct {
	Content     ContentStore
	Evaluator   Evaluator
	Log         *logger.Logger
	CORSOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Log
	if log == nil {
		log = logger.NewNop()
	}
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = config.DefaultCORSOrigins
	}
	h := &handler{content: cfg.Content, evaluator: cfg.Evaluator}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(observability.ServiceName))
	r.Use(requestContext())
	r.Use(requestLogger(log))
	r.Use(corsMiddleware(origins))

	r.GET("/healthz", h.health)

	api := r.Group("/api")
	{
		api.GET("/flashcards", h.listFlashcards)

		api.GET("/quiz/questions", h.listQuizQuestions)
		api.POST("/quiz/check", h.checkQuizAnswer)

		api.GET("/explain/prompts", h.listPrompts)
		api.POST("/explain/evaluate", h.evaluate)

		api.GET("/categories", h.categories)
		api.GET("/stats", h.stats)
	}
	return r
}
