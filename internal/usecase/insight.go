package usecase

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/sync/errgroup"

	"github.com/iWorld-y/investor_insight/internal/biz"
	"github.com/iWorld-y/investor_insight/internal/domain"
)

// InsightUseCase 投资人洞察报告生成流程
type InsightUseCase struct {
	metrics   *biz.MetricGenerator
	tips      *biz.TipsGenerator
	assembler *biz.Assembler
	notifier  *biz.Notifier
	locale    *biz.Locale
	log       *log.Helper
}

// NewInsightUseCase 创建报告生成业务逻辑实例
func NewInsightUseCase(
	metrics *biz.MetricGenerator,
	tips *biz.TipsGenerator,
	assembler *biz.Assembler,
	notifier *biz.Notifier,
	locale *biz.Locale,
	logger log.Logger,
) *InsightUseCase {
	return &InsightUseCase{
		metrics:   metrics,
		tips:      tips,
		assembler: assembler,
		notifier:  notifier,
		locale:    locale,
		log:       log.NewHelper(logger),
	}
}

// Analyze 生成报告并在后台发送邮件版本，返回完整报告对象
func (uc *InsightUseCase) Analyze(ctx context.Context, sub domain.Submission) (*domain.Report, error) {
	if raw, err := sonic.MarshalString(sub); err == nil {
		uc.log.WithContext(ctx).Debugf("收到提交: %s", raw)
	}

	// 行业归一化必须先于评分、总结和提示词
	sub = sub.Normalize()
	country, industry, experience := sub.Country.String(), sub.Industry.String(), sub.Experience.String()

	var metricsHTML, summaryHTML, tipsHTML string

	// 创意建议依赖外部服务，与本地计算并行
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tipsHTML = uc.tips.Generate(gctx, country, industry, experience)
		return nil
	})
	g.Go(func() error {
		age := biz.ComputeAge(sub.Dob.String())
		groups := uc.metrics.Generate()
		metricsHTML = biz.RenderMetrics(groups)

		summary, err := biz.ComposeSummary(age, experience, industry, country, groups)
		if err != nil {
			return fmt.Errorf("compose summary: %w", err)
		}
		summaryHTML = summary
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := uc.assembler.Assemble(sub, metricsHTML, summaryHTML, tipsHTML)
	uc.notifier.Dispatch(ctx, report.Full(), uc.locale.EmailSubject)

	return report, nil
}
