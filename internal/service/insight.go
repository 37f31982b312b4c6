package service

import (
	"context"
	nethttp "net/http"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/investor_insight/internal/biz"
	"github.com/iWorld-y/investor_insight/internal/domain"
	"github.com/iWorld-y/investor_insight/internal/usecase"
)

const (
	OperationInsightAnalyze = "/insight.v1.Insight/Analyze"
	OperationInsightHealth  = "/insight.v1.Insight/Health"
)

// AnalyzeReply 成功时返回公开版本报告
type AnalyzeReply struct {
	HTMLResult string `json:"html_result"`
}

// ErrorReply 失败时只返回通用提示
type ErrorReply struct {
	Error string `json:"error"`
}

type InsightService struct {
	uc     *usecase.InsightUseCase
	locale *biz.Locale
	log    *log.Helper
}

func NewInsightService(uc *usecase.InsightUseCase, locale *biz.Locale, logger log.Logger) *InsightService {
	return &InsightService{uc: uc, locale: locale, log: log.NewHelper(logger)}
}

// RegisterInsightHTTPServer 注册报告相关路由
func RegisterInsightHTTPServer(s *http.Server, svc *InsightService) {
	r := s.Route("/")
	r.POST("/investor_analyze_zh", svc.Analyze)
	r.GET("/healthz", svc.Health)
}

// Analyze 处理一次提交。任何内部错误都只记录日志，对外返回通用错误。
func (s *InsightService) Analyze(ctx http.Context) error {
	http.SetOperation(ctx, OperationInsightAnalyze)

	var in domain.Submission
	if err := ctx.Bind(&in); err != nil {
		s.log.WithContext(ctx).Errorf("investor_analyze_zh 解析请求失败: %v", err)
		return s.fail(ctx)
	}

	h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
		return s.uc.Analyze(ctx, *req.(*domain.Submission))
	})
	// 邮件在后台发送，不能持有会被复用的 http.Context
	out, err := h(ctx.Request().Context(), &in)
	if err != nil {
		s.log.WithContext(ctx).Errorf("investor_analyze_zh error: %+v", err)
		return s.fail(ctx)
	}

	report, ok := out.(*domain.Report)
	if !ok || report == nil {
		s.log.WithContext(ctx).Errorf("investor_analyze_zh error: unexpected result %T", out)
		return s.fail(ctx)
	}
	return ctx.JSON(nethttp.StatusOK, &AnalyzeReply{HTMLResult: report.Public()})
}

func (s *InsightService) Health(ctx http.Context) error {
	http.SetOperation(ctx, OperationInsightHealth)
	return ctx.JSON(nethttp.StatusOK, map[string]string{"status": "ok"})
}

func (s *InsightService) fail(ctx http.Context) error {
	return ctx.JSON(nethttp.StatusInternalServerError, &ErrorReply{Error: s.locale.ServerError})
}
