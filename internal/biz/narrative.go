package biz

import (
	"fmt"
	"html"
	"strings"

	"github.com/iWorld-y/investor_insight/internal/domain"
)

// ComposeSummary 根据资料与评分生成策略总结段落。
// groups 必须是 MetricGenerator 产出的形状：至少三组，每组至少三个分值。
func ComposeSummary(age int, experience, industry, country string, groups []domain.MetricGroup) (string, error) {
	if len(groups) < 3 {
		return "", fmt.Errorf("summary needs 3 metric groups, got %d", len(groups))
	}
	for i, g := range groups[:3] {
		if len(g.Values) < 3 {
			return "", fmt.Errorf("metric group %d (%s) has %d values, want 3", i, g.Title, len(g.Values))
		}
	}

	brand, fit, stick := groups[0].Values[0], groups[0].Values[1], groups[0].Values[2]
	confidence, scale, trust := groups[1].Values[0], groups[1].Values[1], groups[1].Values[2]
	partn, premium, leader := groups[2].Values[0], groups[2].Values[1], groups[2].Values[2]

	country = html.EscapeString(country)
	industry = html.EscapeString(industry)
	experience = html.EscapeString(experience)

	var sb strings.Builder
	sb.WriteString("<br><div style='font-size:24px;font-weight:bold;'>🧠 策略总结：</div><br>")
	fmt.Fprintf(&sb, "<p style='line-height:1.7;'>在 %s 的 %s 行业中，拥有 %s 年经验、年龄 %d 岁的专业人士通常在市场定位方面表现稳健。品牌记忆度平均为 %d%%，客户契合度为 %d%%，声誉粘性为 %d%%。</p>",
		country, industry, experience, age, brand, fit, stick)
	fmt.Fprintf(&sb, "<p style='line-height:1.7;'>在区域投资人心中，故事信心度（%d%%）与信任证明（%d%%）是吸引投资的关键因素。扩展性模型得分 %d%%，代表还有成长空间。</p>",
		confidence, trust, scale)
	fmt.Fprintf(&sb, "<p style='line-height:1.7;'>合作准备度为 %d%%、高端通路运用为 %d%%、领导影响力为 %d%% —— 这些体现了具备国际化执行力与影响力的潜质。</p>",
		partn, premium, leader)
	sb.WriteString("<p style='line-height:1.7;'>综合比较新加坡、马来西亚和台湾的同行趋势，您在该领域展现出显著的战略优势与投资吸引力。</p>")
	return sb.String(), nil
}
