// Package configs 提供应用程序配置管理功能
package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用配置结构
type Config struct {
	Version string      `mapstructure:"version"`
	Log     LogConfig   `mapstructure:"log"`
	App     AppConfig   `mapstructure:"app"`
	Stats   StatsConfig `mapstructure:"stats"`
}

var globalConfig *Config

// setDefaults 设置各配置段的默认值
func setDefaults() {
	viper.SetDefault("version", "1.0")
	setAppConfigDefaults()
	setLogConfigDefaults()
	setStatsConfigDefaults()
}

// tryLoadConfigFiles 按搜索路径尝试加载不同格式的配置文件
func tryLoadConfigFiles() bool {
	searchPaths := []string{
		".",
		"./configs",
		"$HOME",
		"$HOME/.config",
		"$HOME/.config/codestat",
	}

	if runtime.GOOS == "windows" {
		searchPaths = append(searchPaths,
			"$USERPROFILE",
			"$APPDATA/codestat",
		)
	} else {
		searchPaths = append(searchPaths, "/etc/codestat")
	}

	configNames := []string{".codestat", "codestat"}
	extensions := []string{"yaml", "yml", "json", "toml"}

	for _, path := range searchPaths {
		for _, name := range configNames {
			for _, ext := range extensions {
				configFile := filepath.Join(path, name+"."+ext)
				if strings.Contains(configFile, "$") {
					configFile = os.ExpandEnv(configFile)
				}
				if _, err := os.Stat(configFile); err == nil {
					viper.SetConfigFile(configFile)
					return true
				}
			}
		}
	}
	return false
}

// LoadConfig 加载配置文件；configPath 为空时走默认搜索路径
func LoadConfig(configPath string) (*Config, error) {
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		tryLoadConfigFiles()
	}

	viper.SetEnvPrefix("CODESTAT")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// 确保日志目录存在
	if config.Log.Mode == "file" || config.Log.Mode == "both" {
		logDir := filepath.Dir(config.Log.FilePath)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}

	globalConfig = &config
	return &config, nil
}

// GetConfig 获取全局配置，未加载时按默认路径加载一次
func GetConfig() *Config {
	if globalConfig == nil {
		config, err := LoadConfig("")
		if err != nil {
			panic(err)
		}
		globalConfig = config
	}
	return globalConfig
}
