package analyzer

import (
	"io/fs"
	"path/filepath"
)

// excludedDirNames 中的目录会被整体剪枝：目录条目本身被观察一次，
// 但其内容永远不会被访问
var excludedDirNames = map[string]bool{
	".git":         true,
	"bin":          true,
	"logs":         true,
	"node_modules": true,
}

// walkFiles 递归访问 canonicalRoot 下的所有普通文件
//
// 单个条目的遍历错误会被跳过（继续遍历），不会使整次分析失败；
// onFile 的内部错误同理由回调自行吞掉
func walkFiles(canonicalRoot string, onFile func(path string)) {
	_ = filepath.WalkDir(canonicalRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// 条目不可读：目录则不再下探，文件直接跳过
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != canonicalRoot && excludedDirNames[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			onFile(path)
		}
		return nil
	})
}
