package analyzer

import (
	"os"
	"path/filepath"
)

// rootOutcome 是路径守卫的裁决结果
type rootOutcome struct {
	path            string
	withinWorkspace bool
	directoryExists bool
}

// resolveRoot 把请求的 root 解析到 workspace 之下，并判定是否允许遍历
//
// 这是一个安全边界：root 按相对路径拼接到 workspace 后做规范化
// （解析符号链接、折叠 . 与 ..），再用字符串前缀判断包含关系
// 前缀命中必须落在路径分隔符边界上，防止 /workspaceEvil 误判
// 任何一步规范化失败都按拒绝处理（fail closed）
func resolveRoot(root, workspace string) rootOutcome {
	if workspace == "" {
		wd, err := os.Getwd()
		if err != nil {
			return rootOutcome{}
		}
		workspace = wd
	}

	canonicalWorkspace, err := filepath.EvalSymlinks(workspace)
	if err != nil {
		return rootOutcome{}
	}
	canonicalWorkspace, err = filepath.Abs(canonicalWorkspace)
	if err != nil {
		return rootOutcome{}
	}

	if root == "" {
		root = "."
	}
	// root 一律视作相对路径：绝对路径剥掉卷与前导分隔符后拼接
	rel := root
	if filepath.IsAbs(rel) {
		rel = relativePart(rel)
	}
	requested := filepath.Join(canonicalWorkspace, rel)

	// Join 已折叠 .. 片段，EvalSymlinks 负责符号链接
	canonicalRequested, err := filepath.EvalSymlinks(requested)
	if err != nil {
		// 目录不存在或不可达：包含关系仍按折叠后的字面路径判断
		if !contains(canonicalWorkspace, requested) {
			return rootOutcome{path: requested, directoryExists: false}
		}
		return rootOutcome{path: requested, withinWorkspace: true, directoryExists: false}
	}

	if !contains(canonicalWorkspace, canonicalRequested) {
		return rootOutcome{path: canonicalRequested, directoryExists: true}
	}

	info, err := os.Stat(canonicalRequested)
	if err != nil || !info.IsDir() {
		return rootOutcome{path: canonicalRequested, withinWorkspace: true}
	}
	return rootOutcome{path: canonicalRequested, withinWorkspace: true, directoryExists: true}
}

// contains 判断 path 是否等于 workspace 或位于其下（按分隔符边界）
func contains(workspace, path string) bool {
	if len(path) < len(workspace) || path[:len(workspace)] != workspace {
		return false
	}
	return len(path) == len(workspace) || path[len(workspace)] == filepath.Separator
}

// relativePart 去掉绝对路径的卷名与前导分隔符
func relativePart(p string) string {
	p = p[len(filepath.VolumeName(p)):]
	for len(p) > 0 && os.IsPathSeparator(p[0]) {
		p = p[1:]
	}
	return p
}
