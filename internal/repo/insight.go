package repo

import "context"

// CompletionRepo 外部文本补全服务
type CompletionRepo interface {
	// Complete 以单条用户消息请求补全，返回去除首尾空白后的文本
	Complete(ctx context.Context, prompt string, temperature float32) (string, error)
}

// MailRepo 审计邮件投递
type MailRepo interface {
	// Send 将 HTML 正文发送到配置的审计邮箱
	Send(ctx context.Context, subject, htmlBody string) error
}
