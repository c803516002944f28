package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/packagewjx/labor-demand/internal/datasource"
	"github.com/packagewjx/labor-demand/internal/session"
	"github.com/packagewjx/labor-demand/internal/utils"
	"github.com/packagewjx/labor-demand/pkg/core"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	DefaultPort     = 2000
	shutdownTimeout = 10 * time.Second
)

type ServerConfig struct {
	Port     uint16                  // 本服务器监听端口
	Source   datasource.SourceConfig // 历史数据来源
	Evaluate bool                    // 启动时是否评估主模型
	Release  bool                    // 使用gin的release模式
}

func (s ServerConfig) String() string {
	// 不输出数据库密码
	s.Source.MysqlPassword = ""
	marshal, _ := json.Marshal(s)
	return string(marshal)
}

func (config *ServerConfig) Complete() error {
	if config.Port < 1024 {
		return fmt.Errorf("端口号应该在1024到65535之间，现在为%d", config.Port)
	}

	if config.Source.MysqlHost == "" && config.Source.DataFile == "" && os.Getenv("MYSQL_SERVICE_HOST") != "" {
		config.Source.MysqlHost = fmt.Sprintf("%s:%s",
			os.Getenv("MYSQL_SERVICE_HOST"), os.Getenv("MYSQL_SERVICE_PORT"))
	}

	return config.Source.Complete()
}

type Server interface {
	Start() error
	Handler() http.Handler
}

// laborDemander 由session.Session实现
type laborDemander interface {
	LaborDemand(input core.LiveInput) *core.LaborDemand
}

// NewServer 加载数据并训练模型。数据不可用时返回错误。
func NewServer(config *ServerConfig) (Server, error) {
	if err := config.Complete(); err != nil {
		return nil, err
	}

	source, err := config.Source.Open()
	if err != nil {
		return nil, err
	}
	sess, err := session.New(source, &session.Config{Evaluate: config.Evaluate})
	if err != nil {
		return nil, err
	}

	return newServer(config, sess)
}

func newServer(config *ServerConfig, demander laborDemander) (*serverImpl, error) {
	if config.Release {
		gin.SetMode(gin.ReleaseMode)
	}
	s := &serverImpl{
		config:   config,
		demander: demander,
		logger:   utils.NewLogger("server"),
	}
	router, err := s.buildRouter()
	if err != nil {
		return nil, err
	}
	s.router = router
	return s, nil
}

type serverImpl struct {
	config   *ServerConfig
	demander laborDemander
	router   *gin.Engine
	logger   zerolog.Logger
}

func (s *serverImpl) Handler() http.Handler {
	return s.router
}

func (s *serverImpl) Start() error {
	s.logger.Info().Str("config", s.config.String()).Msg("服务器启动")

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.config.Port),
		Handler: s.router,
	}
	errCh := make(chan error, 1)
	go s.serve(server, errCh)

	// 注册信号接收器
	termSigChan := make(chan os.Signal, 1)
	signal.Notify(termSigChan, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(termSigChan)

	select {
	case <-termSigChan:
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			return errors.Wrap(err, "关闭HTTP服务器失败")
		}
	case err := <-errCh:
		// 未收到信号就结束，说明监听失败
		return errors.Wrap(err, "HTTP服务器异常退出")
	}

	// 等待HTTP服务器结束
	err := <-errCh
	if err != nil {
		return errors.Wrap(err, "HTTP关闭出现错误")
	}

	return nil
}

func (s *serverImpl) serve(server *http.Server, errCh chan<- error) {
	s.logger.Info().Str("addr", server.Addr).Msg("HTTP服务器启动")

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		errCh <- err
		return
	}

	s.logger.Info().Msg("HTTP服务器结束")
	errCh <- nil
}
