package biz

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTipsPrompt(t *testing.T) {
	p := BuildTipsPrompt("新加坡", "医疗科技", "5")
	assert.Contains(t, p, "在新加坡从事医疗科技行业、有5年经验")
	assert.Contains(t, p, "10条")
	assert.Contains(t, p, "表情符号")
}

func TestTipsGenerator_Success(t *testing.T) {
	fc := &fakeCompletion{text: "🚀 讲好故事\n\n  💡 展示数据  \n"}
	g := NewTipsGenerator(fc, mustLocale(), testLogger())

	out := g.Generate(context.Background(), "新加坡", "金融", "5")

	require.Len(t, fc.prompts, 1)
	assert.InDelta(t, 0.85, fc.temperature, 1e-6)
	assert.Contains(t, fc.prompts[0], "在新加坡从事金融行业")
	assert.True(t, strings.HasPrefix(out, "<br><div style='font-size:24px;font-weight:bold;'>💡 创意建议：</div><br>"))
	assert.Contains(t, out, "<p style='font-size:16px;'>🚀 讲好故事</p><br><p style='font-size:16px;'>💡 展示数据</p>")
	assert.Equal(t, 2, strings.Count(out, "<p "))
	assert.NotContains(t, out, "无法生成")
}

func TestTipsGenerator_FallbackOnFailure(t *testing.T) {
	tests := []struct {
		name string
		fc   *fakeCompletion
	}{
		{"client error", &fakeCompletion{err: errors.New("401 unauthorized")}},
		{"timeout", &fakeCompletion{err: context.DeadlineExceeded}},
		{"empty text", &fakeCompletion{text: ""}},
		{"whitespace text", &fakeCompletion{text: " \n \n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewTipsGenerator(tt.fc, mustLocale(), testLogger())
			out := g.Generate(context.Background(), "新加坡", "金融", "5")
			assert.Equal(t, "<p style='color:red;'>⚠️ 无法生成创意建议，请稍后重试。</p>", out)
		})
	}
}

func TestFormatTips_EscapesModelOutput(t *testing.T) {
	out := FormatTips("h", "<img src=x onerror=alert(1)>")
	assert.NotContains(t, out, "<img")
	assert.Contains(t, out, "&lt;img")
}
