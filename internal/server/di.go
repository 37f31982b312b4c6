package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/investor_insight/internal/biz"
	"github.com/iWorld-y/investor_insight/internal/data"
	"github.com/iWorld-y/investor_insight/internal/service"
	"github.com/iWorld-y/investor_insight/internal/usecase"
)

// ProviderSet 是报告服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,

	// Data providers
	data.ProviderSet,

	// Biz providers
	biz.NewLocale,
	biz.NewIntSource,
	biz.NewMetricGenerator,
	biz.NewTipsGenerator,
	biz.NewAssembler,
	biz.NewNotifier,

	// UseCase providers
	usecase.NewInsightUseCase,

	// Service providers
	service.NewInsightService,
)
