package utils

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureText 测量文本尺寸
// 参数:
//   - textStr: 要测量的文本
//   - font: 字体，nil 时返回 0
//
// 返回:
//   - width, height: 像素尺寸
func MeasureText(textStr string, font *text.GoTextFace) (width, height float64) {
	if font == nil || textStr == "" {
		return 0, 0
	}
	return text.Measure(textStr, font, 0)
}

// CenteredTextX 返回使文本在 [left, left+width) 内水平居中的起始 X
func CenteredTextX(textStr string, font *text.GoTextFace, left, width float64) float64 {
	w, _ := MeasureText(textStr, font)
	return left + (width-w)/2
}
