package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/packagewjx/labor-demand/pkg/server"
	"github.com/rs/zerolog"
)

func (s *serverImpl) buildRouter() (*gin.Engine, error) {
	tmpl, err := loadIndexTemplate()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(s.logger))
	router.SetHTMLTemplate(tmpl)

	router.GET("/", s.handleIndex)
	router.POST("/", s.handleForm)
	router.GET(server.HealthzPath, func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	router.POST(server.LaborDemandPath, s.handleLaborDemand)
	return router, nil
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("请求完成")
	}
}
