package biz

import (
	"context"
	"sync"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/investor_insight/internal/repo"
)

// Notifier 尽力投递审计邮件。
// 投递结果只用于记录日志，永远不会影响请求的响应。
type Notifier struct {
	repo repo.MailRepo
	log  *log.Helper
	wg   sync.WaitGroup
}

// NewNotifier 返回的 cleanup 会等待所有已派发的邮件结束
func NewNotifier(r repo.MailRepo, logger log.Logger) (*Notifier, func()) {
	n := &Notifier{repo: r, log: log.NewHelper(logger)}
	return n, n.Wait
}

// Notify 同步发送，失败只记录日志
func (n *Notifier) Notify(ctx context.Context, htmlBody, subject string) bool {
	if err := n.repo.Send(ctx, subject, htmlBody); err != nil {
		n.log.WithContext(ctx).Errorf("邮件发送失败: %v", err)
		return false
	}
	n.log.WithContext(ctx).Infof("审计邮件已发送: %s", subject)
	return true
}

// Dispatch 在后台发送，不随请求取消而中断
func (n *Notifier) Dispatch(ctx context.Context, htmlBody, subject string) {
	ctx = context.WithoutCancel(ctx)
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.Notify(ctx, htmlBody, subject)
	}()
}

// Wait 等待所有后台投递完成
func (n *Notifier) Wait() {
	n.wg.Wait()
}
