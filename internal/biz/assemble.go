package biz

import (
	"fmt"
	"html"
	"strings"

	"github.com/iWorld-y/investor_insight/internal/domain"
)

const reportFooter = "<div style='background-color:#f9f9f9;color:#333;padding:20px;border-left:6px solid #8C52FF;" +
	"border-radius:8px;margin-top:30px;'>" +
	"<strong>📊 本报告基于以下来源：</strong>" +
	"<ul style='margin-top:10px;margin-bottom:10px;padding-left:20px;line-height:1.7;'>" +
	"<li>新加坡、马来西亚、台湾地区的专业人士匿名数据</li>" +
	"<li>OpenAI 投资趋势模型 + 区域市场洞察</li></ul>" +
	"<p style='margin-top:10px;line-height:1.7;'>本分析符合 PDPA 合规标准，所有资料仅用于统计模型，不会存储个人记录。</p>" +
	"<p style='margin-top:10px;line-height:1.7;'>" +
	"<strong>附注：</strong> 此为初步洞察，我们将在 24 至 48 小时内发送更完整的定制报告。" +
	"若您想加速获取建议，也可预约 15 分钟私人通话服务。🎯</p></div>"

// Assembler 将各片段拼装成报告
type Assembler struct {
	locale *Locale
}

func NewAssembler(locale *Locale) *Assembler {
	return &Assembler{locale: locale}
}

// Assemble 拼装报告。sub 应当已经过 Normalize。
func (a *Assembler) Assemble(sub domain.Submission, metrics, narrative, tips string) *domain.Report {
	return &domain.Report{
		Title:     a.Title(),
		Details:   a.Details(sub),
		Metrics:   metrics,
		Narrative: narrative,
		Tips:      tips,
		Footer:    reportFooter,
	}
}

func (a *Assembler) Title() string {
	return fmt.Sprintf("<h4 style='text-align:center;font-size:24px;'>%s</h4>", html.EscapeString(a.locale.ReportTitle))
}

// Details 提交摘要，逐项列出全部提交字段
func (a *Assembler) Details(sub domain.Submission) string {
	l := a.locale.Labels
	rows := []struct {
		label string
		value domain.Text
	}{
		{l.FullName, sub.FullName},
		{l.ChineseName, sub.ChineseName},
		{l.Dob, sub.Dob},
		{l.Country, sub.Country},
		{l.Company, sub.Company},
		{l.Role, sub.Role},
		{l.Experience, sub.Experience},
		{l.Industry, sub.Industry},
		{l.Challenge, sub.Challenge},
		{l.Context, sub.Context},
		{l.TargetProfile, sub.TargetProfile},
		{l.Advisor, sub.Advisor},
		{l.Email, sub.Email},
	}

	var sb strings.Builder
	sb.WriteString("<br><div style='font-size:14px;color:#666;'>")
	fmt.Fprintf(&sb, "<strong>%s</strong><br>", html.EscapeString(a.locale.DetailsHeading))
	for i, row := range rows {
		fmt.Fprintf(&sb, "%s: %s", html.EscapeString(row.label), html.EscapeString(row.value.String()))
		if i < len(rows)-1 {
			sb.WriteString("<br>")
		}
	}
	sb.WriteString("</div><br>")
	return sb.String()
}
