package data

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/investor_insight/internal/conf"
	"github.com/iWorld-y/investor_insight/internal/repo"
)

var (
	// ErrCompletionNotConfigured 未配置 API Key
	ErrCompletionNotConfigured = errors.New("completion service not configured")
	// ErrEmptyCompletion 补全服务返回空内容
	ErrEmptyCompletion = errors.New("completion service returned empty content")
)

const defaultCompletionTimeout = 60 * time.Second

type completionRepo struct {
	cm      model.BaseChatModel
	limiter *rate.Limiter
	timeout time.Duration
}

// NewCompletionRepo 初始化 OpenAI 兼容的补全客户端。
// 未配置 API Key 时不会报错，调用时统一返回 ErrCompletionNotConfigured。
func NewCompletionRepo(c *conf.LLM, logger log.Logger) (repo.CompletionRepo, error) {
	helper := log.NewHelper(logger)
	timeout := conf.ParseTimeout(c.Timeout, defaultCompletionTimeout)

	// Limit 设置为 RPM/60，Burst 设置为 QPS
	limit := rate.Limit(float64(c.Concurrency.Rpm) / 60.0)
	burst := int(c.Concurrency.Qps)
	limiter := rate.NewLimiter(limit, burst)
	helper.Infof("限流器已配置: Limit=%.2f req/s, Burst=%d", limit, burst)

	if c.ApiKey == "" {
		helper.Warn("未配置 LLM API Key，创意建议将显示兜底提示")
		return newCompletionRepo(nil, limiter, timeout), nil
	}

	chatModel, err := openai.NewChatModel(context.Background(), &openai.ChatModelConfig{
		BaseURL: c.BaseUrl,
		APIKey:  c.ApiKey,
		Model:   c.Model,
		Timeout: timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}
	return newCompletionRepo(chatModel, limiter, timeout), nil
}

func newCompletionRepo(cm model.BaseChatModel, limiter *rate.Limiter, timeout time.Duration) *completionRepo {
	return &completionRepo{cm: cm, limiter: limiter, timeout: timeout}
}

// Complete 发起一次补全请求，不做重试
func (r *completionRepo) Complete(ctx context.Context, prompt string, temperature float32) (string, error) {
	if r.cm == nil {
		return "", ErrCompletionNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// 等待限流令牌
	if err := r.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("limiter wait error: %w", err)
	}

	messages := []*schema.Message{schema.UserMessage(prompt)}
	resp, err := r.cm.Generate(ctx, messages, model.WithTemperature(temperature))
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	if resp == nil {
		return "", ErrEmptyCompletion
	}

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}
	return content, nil
}
