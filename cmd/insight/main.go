package main

import (
	"flag"
	stdlog "log"
	"os"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/env"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/joho/godotenv"

	"github.com/iWorld-y/investor_insight/internal/conf"
	"github.com/iWorld-y/investor_insight/internal/logger"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name 是服务的名称
	Name = "investor_insight"
	// Version 是服务的版本号
	Version string
	// flagconf 是配置文件的路径命令行参数
	flagconf string

	id, _ = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "configs/config.yaml", "config path, eg: -conf config.yaml")
}

func newApp(logger log.Logger, hs *http.Server) *kratos.App {
	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.Server(hs),
	)
}

func main() {
	flag.Parse()

	// .env 可选，缺失时直接使用进程环境变量
	_ = godotenv.Load()

	// 环境变量用于解析配置文件中的 ${OPENAI_API_KEY} 等占位符
	c := config.New(
		config.WithSource(
			env.NewSource(),
			file.NewSource(flagconf),
		),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		stdlog.Fatalf("无法加载配置文件: %v", err)
	}

	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		stdlog.Fatalf("无法解析配置: %v", err)
	}
	bc.ApplyDefaults()

	if err := logger.InitLogger(bc.Log.Level, bc.Log.File); err != nil {
		stdlog.Fatalf("无法初始化日志: %v", err)
	}
	kl := log.With(logger.NewKratosLogger(logger.Log),
		"caller", log.DefaultCaller,
		"service.id", id,
		"service.name", Name,
		"service.version", Version,
	)
	log.SetLogger(kl)

	app, cleanup, err := initApp(bc.Server, bc.LLM, bc.Mail, bc.Report, kl)
	if err != nil {
		logger.Log.Fatalf("服务初始化失败: %v", err)
	}
	defer cleanup()

	logger.Log.Infof("启动投资人洞察服务: %s", bc.Server.Http.Addr)
	if err := app.Run(); err != nil {
		logger.Log.Errorf("服务退出: %v", err)
	}
}
