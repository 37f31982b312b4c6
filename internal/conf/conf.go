package conf

import "time"

// Bootstrap 服务启动配置
type Bootstrap struct {
	Server *Server `json:"server"`
	LLM    *LLM    `json:"llm"`
	Mail   *Mail   `json:"mail"`
	Log    *Log    `json:"log"`
	Report *Report `json:"report"`
}

type Server struct {
	Http *HTTP `json:"http"`
	Cors *CORS `json:"cors"`
}

type HTTP struct {
	Addr    string `json:"addr"`
	Timeout string `json:"timeout"`
}

// CORS 跨域配置，AllowedOrigins 为空时放行所有来源
type CORS struct {
	AllowedOrigins []string `json:"allowed_origins"`
}

// LLM 创意建议使用的补全服务配置
type LLM struct {
	BaseUrl     string       `json:"base_url"`
	ApiKey      string       `json:"api_key"`
	Model       string       `json:"model"`
	Timeout     string       `json:"timeout"`
	Concurrency *Concurrency `json:"concurrency"`
}

type Concurrency struct {
	Qps int32 `json:"qps"`
	Rpm int32 `json:"rpm"`
}

// Mail 审计邮件的 SMTP 中继配置
type Mail struct {
	Host     string `json:"host"`
	Port     int32  `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	// To 为空时发回 Username 自己的邮箱
	To      string `json:"to"`
	Timeout string `json:"timeout"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Report struct {
	Language string `json:"language"`
}

// ApplyDefaults 填充缺省值，保证各组件拿到的配置都不为 nil
func (b *Bootstrap) ApplyDefaults() {
	if b.Server == nil {
		b.Server = &Server{}
	}
	if b.Server.Http == nil {
		b.Server.Http = &HTTP{}
	}
	if b.Server.Http.Addr == "" {
		b.Server.Http.Addr = "0.0.0.0:8000"
	}
	if b.Server.Http.Timeout == "" {
		b.Server.Http.Timeout = "90s"
	}
	if b.Server.Cors == nil {
		b.Server.Cors = &CORS{}
	}

	if b.LLM == nil {
		b.LLM = &LLM{}
	}
	if b.LLM.Model == "" {
		b.LLM.Model = "gpt-3.5-turbo"
	}
	if b.LLM.Timeout == "" {
		b.LLM.Timeout = "60s"
	}
	if b.LLM.Concurrency == nil {
		b.LLM.Concurrency = &Concurrency{}
	}
	if b.LLM.Concurrency.Qps <= 0 {
		b.LLM.Concurrency.Qps = 5
	}
	if b.LLM.Concurrency.Rpm <= 0 {
		b.LLM.Concurrency.Rpm = 60
	}

	if b.Mail == nil {
		b.Mail = &Mail{}
	}
	if b.Mail.Host == "" {
		b.Mail.Host = "smtp.gmail.com"
	}
	if b.Mail.Port == 0 {
		b.Mail.Port = 587
	}
	if b.Mail.To == "" {
		b.Mail.To = b.Mail.Username
	}
	if b.Mail.Timeout == "" {
		b.Mail.Timeout = "30s"
	}

	if b.Log == nil {
		b.Log = &Log{Level: "info"}
	}
	if b.Report == nil {
		b.Report = &Report{}
	}
	if b.Report.Language == "" {
		b.Report.Language = "zh"
	}
}

// ParseTimeout 解析 "30s" 形式的时长，非法或非正值时返回 fallback
func ParseTimeout(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
