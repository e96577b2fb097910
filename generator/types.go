package generator

import "unicode/utf8"

// Request 生成初稿所需的记录字段（可为空）。
type Request struct {
	Title string
	Notes string
}

// Draft 模型产出的初稿（已去首尾空白，非空）。
type Draft struct {
	Text string
}

// Preview 截取前 n 个字符用于日志。
func (d Draft) Preview(n int) string {
	if utf8.RuneCountInString(d.Text) <= n {
		return d.Text
	}
	return string([]rune(d.Text)[:n]) + "..."
}
