package biz

import (
	"fmt"
	"html"
	"strings"

	"github.com/iWorld-y/investor_insight/internal/domain"
)

var barPalette = []string{"#8C52FF", "#5E9CA0", "#F2A900"}

// RenderMetrics 将评分渲染为横向条形图
func RenderMetrics(groups []domain.MetricGroup) string {
	var sb strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&sb, "<strong style='font-size:18px;color:#333;'>%s</strong><br>", html.EscapeString(g.Title))
		for j, label := range g.Labels {
			if j >= len(g.Values) {
				break
			}
			val := g.Values[j]
			fmt.Fprintf(&sb,
				"<div style='display:flex;align-items:center;margin-bottom:8px;'>"+
					"<span style='width:180px;'>%s</span>"+
					"<div style='flex:1;background:#eee;border-radius:5px;overflow:hidden;'>"+
					"<div style='width:%d%%;height:14px;background:%s;'></div></div>"+
					"<span style='margin-left:10px;'>%d%%</span></div>",
				html.EscapeString(label), clampPercent(val), barPalette[j%len(barPalette)], val)
		}
		sb.WriteString("<br>")
	}
	return sb.String()
}

func clampPercent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}
