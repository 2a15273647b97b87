package embedded

import (
	"testing"
	"testing/fstest"
)

func initTestFS() {
	Init(fstest.MapFS{
		"data/intro.yaml":       {Data: []byte("presets: {}\n")},
		"data/extra/notes.yaml": {Data: []byte("x: 1\n")},
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	initTestFS()
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	initialized = false
	defer initTestFS()

	_, err := ReadFile("data/intro.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// TestReadFile 测试读取文件及路径标准化
func TestReadFile(t *testing.T) {
	initTestFS()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"普通路径", "data/intro.yaml", "presets: {}\n", false},
		{"带 ./ 前缀", "./data/intro.yaml", "presets: {}\n", false},
		{"未知前缀", "assets/intro.yaml", "", true},
		{"不存在的文件", "data/missing.yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadFile(%q) 期望返回错误", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if string(data) != tt.want {
				t.Errorf("ReadFile(%q) = %q, 期望 %q", tt.path, data, tt.want)
			}
		})
	}
}

// TestExistsAndReadDir 测试存在性检查和目录读取
func TestExistsAndReadDir(t *testing.T) {
	initTestFS()

	if !Exists("data/intro.yaml") {
		t.Error("data/intro.yaml 应该存在")
	}
	if Exists("data/none.yaml") {
		t.Error("data/none.yaml 不应存在")
	}

	entries, err := ReadDir("data")
	if err != nil {
		t.Fatalf("ReadDir() error: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("data 目录应有 2 个条目，实际 %d", len(entries))
	}
}
