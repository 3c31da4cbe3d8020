// Package context 提供应用级上下文：配置与日志记录器的装配
package context

import (
	"context"

	"github.com/yeisme/codestat/pkg/configs"
	"github.com/yeisme/codestat/pkg/utils/log"
)

// CodestatContext 聚合一次命令执行所需的共享对象
type CodestatContext struct {
	context.Context
	Config *configs.Config // 应用配置
	Logger log.Logger      // 日志记录器
}

// InitCodestatContext 加载配置并初始化日志；命令行旗标覆盖配置文件
func InitCodestatContext(configPath string, debug, verbose, quiet bool) *CodestatContext {
	ctx := context.Background()
	config, err := configs.LoadConfig(configPath)
	if err != nil {
		panic(err)
	}

	if debug {
		config.App.Debug = true
	}
	if verbose {
		config.App.Verbose = true
	}
	if quiet {
		config.App.Quiet = true
	}

	logger := log.InitLogger(ctx, &config.Log, &config.App)

	return &CodestatContext{
		Context: ctx,
		Config:  config,
		Logger:  logger,
	}
}
