package svgmap

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
)

// Variant selects the fill-color policy of one output document. Both
// variants bake the status markers; print additionally colorizes lot fills
// by plan category.
type Variant struct {
	Suffix   string
	Colorize bool
}

var (
	VariantPrint   = Variant{Suffix: "_print", Colorize: true}
	VariantDigital = Variant{Suffix: "_digital", Colorize: false}
)

// Build runs the full conversion pipeline for one variant and returns the
// assembled drawing document. It fails with ErrEmptyInput before producing
// any output when no layer holds geometry.
func Build(layers Layers, canvas Canvas, v Variant) (*etree.Document, error) {
	t, err := Fit(canvas, layers.all()...)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	svg := doc.CreateElement("svg")
	svg.CreateAttr("version", "1.0")
	svg.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	svg.CreateAttr("xmlns:xlink", "http://www.w3.org/1999/xlink")
	svg.CreateAttr("x", "0px")
	svg.CreateAttr("y", "0px")
	svg.CreateAttr("width", fmt.Sprintf("%gpx", canvas.Width))
	svg.CreateAttr("height", fmt.Sprintf("%gpx", canvas.Height))
	svg.CreateAttr("viewBox", fmt.Sprintf("0 0 %g %g", canvas.Width, canvas.Height))
	svg.CreateAttr("xml:space", "preserve")
	svg.CreateAttr("preserveAspectRatio", "xMinYMin")
	svg.CreateAttr("style", "width:100%")
	svg.CreateAttr("class", "tsPlotmap")

	appendBackground(svg, layers, t)
	if !layers.Lots.Empty() {
		appendLots(svg, layers.Lots, t, v.Colorize, true)
	}
	return doc, nil
}

// WriteFiles generates both variants and writes <base>_print.svg and
// <base>_digital.svg, stripping any extension from the supplied base first.
// Nothing is written if either build fails.
func WriteFiles(layers Layers, canvas Canvas, outputBase string) (printPath, digitalPath string, err error) {
	base := strings.TrimSuffix(outputBase, filepath.Ext(outputBase))
	printPath = base + VariantPrint.Suffix + ".svg"
	digitalPath = base + VariantDigital.Suffix + ".svg"

	printDoc, err := Build(layers, canvas, VariantPrint)
	if err != nil {
		return "", "", err
	}
	digitalDoc, err := Build(layers, canvas, VariantDigital)
	if err != nil {
		return "", "", err
	}

	if err := writeDoc(printDoc, printPath); err != nil {
		return "", "", err
	}
	if err := writeDoc(digitalDoc, digitalPath); err != nil {
		return "", "", err
	}
	return printPath, digitalPath, nil
}

func writeDoc(doc *etree.Document, path string) error {
	doc.Indent(2)
	if err := doc.WriteToFile(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
