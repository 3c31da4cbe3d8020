package configs

import "github.com/spf13/viper"

// LogConfig 日志配置
// codestat 是短生命周期的命令行工具，日志主要用于排查一次分析的过程，
// 因此文件轮转的默认值比常驻服务保守得多
type LogConfig struct {
	Level      string `mapstructure:"level"`       // trace, debug, info, warn, error, fatal, panic
	JSON       bool   `mapstructure:"json"`        // 控制台输出是否用 JSON 格式
	Mode       string `mapstructure:"mode"`        // console, file, both
	FilePath   string `mapstructure:"file_path"`   // mode 为 file/both 时的日志文件路径
	MaxSize    int    `mapstructure:"max_size"`    // 单个日志文件上限（MB）
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // 天
}

func setLogConfigDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.json", false)
	viper.SetDefault("log.mode", "console")
	viper.SetDefault("log.file_path", ".codestat/codestat.log")
	viper.SetDefault("log.max_size", 10)
	viper.SetDefault("log.max_backups", 2)
	viper.SetDefault("log.max_age", 7)
}
