package biz

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/investor_insight/internal/repo"
)

// tipsTemperature 创意建议的采样温度
const tipsTemperature float32 = 0.85

// TipsGenerator 调用补全服务生成吸引投资人的创意建议
type TipsGenerator struct {
	repo   repo.CompletionRepo
	locale *Locale
	log    *log.Helper
}

func NewTipsGenerator(r repo.CompletionRepo, locale *Locale, logger log.Logger) *TipsGenerator {
	return &TipsGenerator{repo: r, locale: locale, log: log.NewHelper(logger)}
}

// BuildTipsPrompt 构造创意建议的提示词
func BuildTipsPrompt(country, industry, experience string) string {
	return fmt.Sprintf("你是一位商业顾问，请为在%s从事%s行业、有%s年经验的专业人士，"+
		"撰写10条具创意、富启发性的吸引投资人技巧，每条以表情符号开头。语言用简体中文，风格轻松、实用。",
		country, industry, experience)
}

// Generate 返回创意建议片段。补全失败时返回兜底提示，不会返回错误。
func (g *TipsGenerator) Generate(ctx context.Context, country, industry, experience string) string {
	text, err := g.repo.Complete(ctx, BuildTipsPrompt(country, industry, experience), tipsTemperature)
	if err != nil {
		g.log.WithContext(ctx).Errorf("创意建议生成失败: %v", err)
		return g.Fallback()
	}
	if strings.TrimSpace(text) == "" {
		g.log.WithContext(ctx).Error("创意建议生成失败: 补全结果为空")
		return g.Fallback()
	}
	return FormatTips(g.locale.TipsHeading, text)
}

// Fallback 补全服务不可用时显示的提示
func (g *TipsGenerator) Fallback() string {
	return fmt.Sprintf("<p style='color:red;'>%s</p>", html.EscapeString(g.locale.TipsFallback))
}

// FormatTips 将补全文本按行拆分，每个非空行包成一个段落
func FormatTips(heading, text string) string {
	var paragraphs []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paragraphs = append(paragraphs, fmt.Sprintf("<p style='font-size:16px;'>%s</p>", html.EscapeString(line)))
	}
	return fmt.Sprintf("<br><div style='font-size:24px;font-weight:bold;'>%s</div><br>", html.EscapeString(heading)) +
		strings.Join(paragraphs, "<br>")
}
