package gfont

import (
	"hangman/ui/gui/gbase/gassets"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Normal font.Face
	Title  font.Face
	Debug  font.Face
}

func LoadFonts(dir *gassets.Dir, file string, size int) (*Fonts, error) {
	// read ttf
	data, err := dir.ReadFile(file)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	fonts := &Fonts{Debug: basicfont.Face7x13}
	fonts.Normal, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}

	// for menu captions
	fonts.Title, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size) * 2,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		fonts.Normal.Close()
		return nil, err
	}

	return fonts, nil
}

func (f *Fonts) Close() {
	if f.Normal != nil {
		f.Normal.Close()
	}
	if f.Title != nil {
		f.Title.Close()
	}
}
