package data

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/investor_insight/internal/conf"
	"github.com/iWorld-y/investor_insight/internal/repo"
)

// ErrMailNotConfigured 未配置 SMTP 账号或密码
var ErrMailNotConfigured = errors.New("mail relay credentials not configured")

const defaultMailTimeout = 30 * time.Second

type mailRepo struct {
	host     string
	port     int
	username string
	password string
	to       string
	timeout  time.Duration
}

// NewMailRepo 创建 SMTP 中继客户端，发件人与收件人默认都是 Username
func NewMailRepo(c *conf.Mail, logger log.Logger) repo.MailRepo {
	if c.Username == "" || c.Password == "" {
		log.NewHelper(logger).Warn("未配置 SMTP 账号或密码，审计邮件将无法发送")
	}
	to := c.To
	if to == "" {
		to = c.Username
	}
	return &mailRepo{
		host:     c.Host,
		port:     int(c.Port),
		username: c.Username,
		password: c.Password,
		to:       to,
		timeout:  conf.ParseTimeout(c.Timeout, defaultMailTimeout),
	}
}

// Send 通过 STARTTLS + AUTH 投递一封 HTML 邮件
func (r *mailRepo) Send(ctx context.Context, subject, htmlBody string) error {
	if r.username == "" || r.password == "" {
		return ErrMailNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	msg := buildMessage(r.username, r.to, subject, htmlBody, time.Now())
	addr := net.JoinHostPort(r.host, strconv.Itoa(r.port))
	return r.sendSMTP(ctx, addr, msg)
}

// sendSMTP 执行一次完整的 SMTP 会话
func (r *mailRepo) sendSMTP(ctx context.Context, addr string, msg []byte) error {
	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("SMTP connect to %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, r.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("SMTP client: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); !ok {
		return errors.New("SMTP server does not support STARTTLS")
	}
	if err := c.StartTLS(&tls.Config{ServerName: r.host}); err != nil {
		return fmt.Errorf("STARTTLS: %w", err)
	}
	if err := c.Auth(smtp.PlainAuth("", r.username, r.password, r.host)); err != nil {
		return fmt.Errorf("AUTH: %w", err)
	}

	if err := c.Mail(r.username); err != nil {
		return fmt.Errorf("MAIL FROM: %w", err)
	}
	if err := c.Rcpt(r.to); err != nil {
		return fmt.Errorf("RCPT TO: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("DATA: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("DATA close: %w", err)
	}
	return c.Quit()
}

// buildMessage 组装 UTF-8 HTML 邮件，正文使用 base64 编码
func buildMessage(from, to, subject, htmlBody string, now time.Time) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.BEncoding.Encode("UTF-8", subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", now.Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	buf.WriteString("Content-Transfer-Encoding: base64\r\n")
	buf.WriteString("\r\n")

	encoded := base64.StdEncoding.EncodeToString([]byte(htmlBody))
	for len(encoded) > 76 {
		buf.WriteString(encoded[:76])
		buf.WriteString("\r\n")
		encoded = encoded[76:]
	}
	buf.WriteString(encoded)
	buf.WriteString("\r\n")
	return buf.Bytes()
}
