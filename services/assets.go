package services

import (
	"embed"
	"fmt"
)

//go:embed assets/*.png assets/fonts/*.ttf
var assetFS embed.FS

// Asset identifies one of the embedded brand images.
type Asset string

const (
	AssetLogo              Asset = "logo_alysophil"
	AssetQSPRDiagram       Asset = "qspr_diagram"
	AssetTrainingModel     Asset = "training_model"
	AssetReverseQSPR       Asset = "reverse_qspr"
	AssetPolymerMultiscale Asset = "polymer_multiscale"
	AssetBackCover         Asset = "back_cover"
)

// assetPixels records the pixel size of each embedded PNG; image frames keep
// this aspect ratio.
var assetPixels = map[Asset][2]int{
	AssetLogo:              {501, 300},
	AssetQSPRDiagram:       {532, 196},
	AssetTrainingModel:     {526, 372},
	AssetReverseQSPR:       {426, 434},
	AssetPolymerMultiscale: {645, 314},
	AssetBackCover:         {1333, 750},
}

// AspectRatio returns height / width of the asset.
func (a Asset) AspectRatio() float64 {
	px, ok := assetPixels[a]
	if !ok || px[0] == 0 {
		return 0
	}
	return float64(px[1]) / float64(px[0])
}

// AssetBytes returns the embedded PNG for a.
func AssetBytes(a Asset) ([]byte, error) {
	b, err := assetFS.ReadFile("assets/" + string(a) + ".png")
	if err != nil {
		return nil, fmt.Errorf("asset %s: %w", a, err)
	}
	return b, nil
}

// imageAt places asset at (x, y) with width w; the height follows the
// asset's aspect ratio.
func imageAt(a Asset, x, y, w float64) *Image {
	return &Image{Asset: a, Frame: Frame{X: x, Y: y, W: w, H: w * a.AspectRatio()}}
}

// FontStyle selects one face of the embedded DejaVu Sans Condensed family.
type FontStyle string

const (
	FontRegular    FontStyle = ""
	FontBold       FontStyle = "B"
	FontItalic     FontStyle = "I"
	FontBoldItalic FontStyle = "BI"
)

// FontFamily is the family name the PDF writers register the faces under.
const FontFamily = "dejavu"

var fontFiles = map[FontStyle]string{
	FontRegular:    "DejaVuSansCondensed.ttf",
	FontBold:       "DejaVuSansCondensed-Bold.ttf",
	FontItalic:     "DejaVuSansCondensed-Oblique.ttf",
	FontBoldItalic: "DejaVuSansCondensed-BoldOblique.ttf",
}

// FontStyles lists the embedded faces in registration order.
var FontStyles = []FontStyle{FontRegular, FontBold, FontItalic, FontBoldItalic}

// FontBytes returns the embedded TrueType file for style.
func FontBytes(style FontStyle) ([]byte, error) {
	name, ok := fontFiles[style]
	if !ok {
		return nil, fmt.Errorf("font style %q: unknown", style)
	}
	b, err := assetFS.ReadFile("assets/fonts/" + name)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", name, err)
	}
	return b, nil
}
