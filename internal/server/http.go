package server

import (
	"context"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/investor_insight/internal/conf"
	"github.com/iWorld-y/investor_insight/internal/service"
)

const defaultTimeout = 90 * time.Second

// NewHTTPServer 创建 HTTP 服务并注册路由
func NewHTTPServer(c *conf.Server, s *service.InsightService, logger log.Logger) *http.Server {
	origins := []string{"*"}
	if c.Cors != nil && len(c.Cors.AllowedOrigins) > 0 {
		origins = c.Cors.AllowedOrigins
	}

	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(recovery.WithHandler(func(ctx context.Context, req, err interface{}) error {
				log.NewHelper(logger).WithContext(ctx).Errorf("panic recovered: %v", err)
				return recovery.ErrUnknownRequest
			})),
		),
		http.Filter(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		})),
		http.RequestDecoder(decodeRequest),
	}
	if c.Http != nil && c.Http.Addr != "" {
		opts = append(opts, http.Address(c.Http.Addr))
	}
	// kratos 默认 1s 超时，不足以覆盖补全请求
	timeout := defaultTimeout
	if c.Http != nil {
		timeout = conf.ParseTimeout(c.Http.Timeout, defaultTimeout)
	}
	opts = append(opts, http.Timeout(timeout))

	srv := http.NewServer(opts...)
	service.RegisterInsightHTTPServer(srv, s)
	return srv
}
