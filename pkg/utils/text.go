package utils

import "strings"

// ==================== 文案工具 ====================

// LimitWords 截取前 n 个词，用单个空格重新拼接
// 输入不足 n 个词时原样返回
func LimitWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ")
}

// SafeList 规范化可能为 nil 的切片
// nil -> def（def 为 nil 时返回空切片）
func SafeList(v []string, def []string) []string {
	if v == nil {
		if def == nil {
			return []string{}
		}
		return def
	}
	return v
}

// TruncateForMeta 生成 meta description
// 换行折叠为空格并去掉首尾空白；超过 maxLen 时硬截断到 maxLen-3 并追加省略号
// 注意：按字符硬切，不按词边界（保持上游约定，勿改）
func TruncateForMeta(text string, maxLen int) string {
	s := strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return strings.TrimRight(string(r[:maxLen-3]), " ") + "..."
}

// DedupOrdered 去重并保持首次出现顺序
func DedupOrdered(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

// CountWords 统计词数（空白分隔）
func CountWords(text string) int {
	return len(strings.Fields(text))
}
