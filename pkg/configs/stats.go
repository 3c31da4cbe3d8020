package configs

import "github.com/spf13/viper"

// StatsConfig 统计分析配置
type StatsConfig struct {
	// Workspace 包含检查的信任根目录，为空时使用进程工作目录
	Workspace string `mapstructure:"workspace"`
	// Format 默认输出格式: table, json, yaml, toml, md, csv, xlsx
	Format string `mapstructure:"format"`
	// IncludeBlankLines 默认是否统计空白行
	IncludeBlankLines bool `mapstructure:"include_blank_lines"`
	// IncludeCommentLines 默认是否统计注释行
	IncludeCommentLines bool `mapstructure:"include_comment_lines"`
}

func setStatsConfigDefaults() {
	viper.SetDefault("stats.workspace", "")
	viper.SetDefault("stats.format", "table")
	viper.SetDefault("stats.include_blank_lines", false)
	viper.SetDefault("stats.include_comment_lines", false)
}
