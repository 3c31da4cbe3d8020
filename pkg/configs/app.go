package configs

import "github.com/spf13/viper"

// AppConfig 应用配置
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Debug   bool   `mapstructure:"debug"`
	Verbose bool   `mapstructure:"verbose"`
	Quiet   bool   `mapstructure:"quiet"` // 是否安静模式，禁止所有日志输出

	Watch WatchConfig `mapstructure:"watch"`
}

// WatchConfig 监视模式配置
type WatchConfig struct {
	Debounce       int      `mapstructure:"debounce"`        // 防抖时间，毫秒
	IgnorePatterns []string `mapstructure:"ignore_patterns"` // 忽略的文件模式
}

func setAppConfigDefaults() {
	viper.SetDefault("app.name", "codestat")
	viper.SetDefault("app.debug", false)
	viper.SetDefault("app.verbose", false)
	viper.SetDefault("app.quiet", false)

	viper.SetDefault("app.watch.debounce", 300) // 毫秒
	viper.SetDefault("app.watch.ignore_patterns", []string{
		"*.tmp",
		"*.swp",
		"*.log",
	})
}
