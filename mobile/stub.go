//go:build !mobile

// Package mobile 的桌面端占位
//
// ebitenmobile 绑定入口在 mobile.go / embed.go 中，只在 -tags mobile 时编译；
// 普通的 go build ./... 只看到这个文件。
package mobile

// Dummy 与移动端构建保持相同的导出符号
func Dummy() {}
