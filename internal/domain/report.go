package domain

// MetricGroup 一组三个相关的百分制评分，Labels 与 Values 一一对应
type MetricGroup struct {
	Title  string
	Labels []string
	Values []int
}

// Report 投资人洞察报告的各个 HTML 片段
type Report struct {
	Title     string
	Details   string // 提交摘要，仅出现在邮件版本
	Metrics   string
	Narrative string
	Tips      string
	Footer    string
}

// Full 邮件版本，包含提交摘要
func (r *Report) Full() string {
	return r.Title + r.Details + r.Metrics + r.Narrative + r.Tips + r.Footer
}

// Public 返回给调用方的版本，不含提交摘要
func (r *Report) Public() string {
	return r.Title + r.Metrics + r.Narrative + r.Tips + r.Footer
}
