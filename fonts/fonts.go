package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	GoTitle FontName = "go-title" // pause title
	GoSmall FontName = "go-small" // pause hint
	GoMono  FontName = "go-mono"  // HUD readout
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the bundled Go font faces.
func LoadDefaults() {
	LoadFontWithSize(GoTitle, gobold.TTF, 32)
	LoadFontWithSize(GoSmall, goregular.TTF, 11)
	LoadFontWithSize(GoMono, gomono.TTF, 12)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
