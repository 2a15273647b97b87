package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// 内嵌字体名称
const (
	FontBold    = "bold"    // 主标题
	FontMono    = "mono"    // 副标题
	FontRegular = "regular" // 其他 UI 文本
)

// FontManager 管理内嵌 Go 字体及按字号缓存的字体外观
type FontManager struct {
	sources       map[string]*text.GoTextFaceSource
	fontFaceCache map[string]*text.GoTextFace
}

// NewFontManager 加载内嵌字体
func NewFontManager() (*FontManager, error) {
	fm := &FontManager{
		sources:       make(map[string]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
	}

	fonts := map[string][]byte{
		FontBold:    gobold.TTF,
		FontMono:    gomono.TTF,
		FontRegular: goregular.TTF,
	}
	for name, data := range fonts {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source %s: %w", name, err)
		}
		fm.sources[name] = source
	}

	return fm, nil
}

// Face 获取指定字体和字号的字体外观（带缓存）
func (fm *FontManager) Face(name string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", name, size)
	if cachedFace, exists := fm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, ok := fm.sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown font %q", name)
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	fm.fontFaceCache[cacheKey] = face
	return face, nil
}
