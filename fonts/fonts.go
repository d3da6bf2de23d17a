package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Title   FontName = "title"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// Load parses the bundled typeface at every size the game uses.
func Load() {
	fontData, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("bundled font does not parse: %v", err))
	}
	loadFace(fontData, Regular, 16)
	loadFace(fontData, Title, 32)
	loadFace(fontData, Small, 11)
}

func loadFace(fontData *truetype.Font, name FontName, size float64) {
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
