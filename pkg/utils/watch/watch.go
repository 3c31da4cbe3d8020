// Package watch 提供基于 fsnotify 的目录监视能力：
// 根目录下的文件发生变化时触发回调，常用于让统计结果跟随代码演进刷新
package watch

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/yeisme/codestat/pkg/configs"
)

// Func 是文件变化后被调用的钩子
type Func func() error

// skipDirNames 与分析器剪枝的目录保持一致，这些目录的抖动不值得触发重算
var skipDirNames = map[string]bool{
	".git":         true,
	"bin":          true,
	"logs":         true,
	"node_modules": true,
}

// Run 在 root 上启动监视；事件经过防抖后调用 hook，阻塞直到 watcher 失效
func Run(root string, config configs.WatchConfig, logger zerolog.Logger, hook Func) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			logger.Error().Err(cerr).Msg("close watcher")
		}
	}()

	if err := addDirectories(watcher, root); err != nil {
		return err
	}

	debounce := time.Duration(config.Debounce) * time.Millisecond
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}

	logger.Info().Str("root", root).Dur("debounce", debounce).Msg("watch mode started, press Ctrl+C to exit")

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ignored(event.Name, config.IgnorePatterns) {
				continue
			}
			// 新目录出现时纳入监视
			if event.Op.Has(fsnotify.Create) {
				_ = addDirectories(watcher, event.Name)
			}
			if timer == nil {
				timer = time.AfterFunc(debounce, func() { pending <- struct{}{} })
			} else {
				timer.Reset(debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watch error")
		case <-pending:
			timer = nil
			if err := hook(); err != nil {
				logger.Error().Err(err).Msg("watch hook failed")
			}
		}
	}
}

// addDirectories 递归注册 root 下的目录（剪枝目录除外）
func addDirectories(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != root && skipDirNames[d.Name()] {
			return filepath.SkipDir
		}
		if werr := watcher.Add(path); werr != nil {
			return fmt.Errorf("add %s to watcher: %w", path, werr)
		}
		return nil
	})
}

// ignored 判断路径是否匹配任意忽略模式（按基础名做 glob）
func ignored(path string, patterns []string) bool {
	base := filepath.Base(path)
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if ok, _ := filepath.Match(p, base); ok {
			return true
		}
	}
	return false
}
