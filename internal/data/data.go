package data

import "github.com/google/wire"

// ProviderSet 外部协作方（补全服务、邮件中继）的 Provider 集合
var ProviderSet = wire.NewSet(NewCompletionRepo, NewMailRepo)
