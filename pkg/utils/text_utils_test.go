package utils

import (
	"bytes"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func testFace(t *testing.T) *text.GoTextFace {
	t.Helper()
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("无法创建字体源: %v", err)
	}
	return &text.GoTextFace{Source: source, Size: 18}
}

// TestMeasureText 测试文本测量
func TestMeasureText(t *testing.T) {
	font := testFace(t)

	if w, h := MeasureText("", font); w != 0 || h != 0 {
		t.Errorf("空文本应为 0x0, got %vx%v", w, h)
	}
	if w, h := MeasureText("abc", nil); w != 0 || h != 0 {
		t.Errorf("nil 字体应为 0x0, got %vx%v", w, h)
	}

	short, _ := MeasureText("For", font)
	long, h := MeasureText("For you, always", font)
	if short <= 0 || long <= short {
		t.Errorf("宽度应随文本增长: %v vs %v", short, long)
	}
	if h <= 0 {
		t.Errorf("高度应为正数, got %v", h)
	}
}

// TestCenteredTextX 测试水平居中
func TestCenteredTextX(t *testing.T) {
	font := testFace(t)
	w, _ := MeasureText("Bouquet", font)

	x := CenteredTextX("Bouquet", font, 100, 300)
	if got := x + w/2; got < 249.99 || got > 250.01 {
		t.Errorf("文本中心应在 250, got %v", got)
	}
	if x := CenteredTextX("", font, 0, 300); x != 150 {
		t.Errorf("空文本应从中心开始, got %v", x)
	}
}
