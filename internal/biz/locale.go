package biz

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/iWorld-y/investor_insight/internal/conf"
)

//go:embed locales.yaml
var localesYAML []byte

// Locale 报告中按语言区分的固定文案
type Locale struct {
	EmailSubject   string       `yaml:"email_subject"`
	ReportTitle    string       `yaml:"report_title"`
	TipsHeading    string       `yaml:"tips_heading"`
	TipsFallback   string       `yaml:"tips_fallback"`
	DetailsHeading string       `yaml:"details_heading"`
	ServerError    string       `yaml:"server_error"`
	Labels         DetailLabels `yaml:"labels"`
}

// DetailLabels 提交摘要中各字段的标签
type DetailLabels struct {
	FullName      string `yaml:"full_name"`
	ChineseName   string `yaml:"chinese_name"`
	Dob           string `yaml:"dob"`
	Country       string `yaml:"country"`
	Company       string `yaml:"company"`
	Role          string `yaml:"role"`
	Experience    string `yaml:"experience"`
	Industry      string `yaml:"industry"`
	Challenge     string `yaml:"challenge"`
	Context       string `yaml:"context"`
	TargetProfile string `yaml:"target_profile"`
	Advisor       string `yaml:"advisor"`
	Email         string `yaml:"email"`
}

// LoadLocale 从内嵌语言表中读取指定语言
func LoadLocale(lang string) (*Locale, error) {
	var table map[string]*Locale
	if err := yaml.Unmarshal(localesYAML, &table); err != nil {
		return nil, fmt.Errorf("parse locale table: %w", err)
	}
	l, ok := table[lang]
	if !ok || l == nil {
		return nil, fmt.Errorf("unsupported report language %q", lang)
	}
	return l, nil
}

// NewLocale 按配置加载报告语言
func NewLocale(c *conf.Report) (*Locale, error) {
	return LoadLocale(c.Language)
}
