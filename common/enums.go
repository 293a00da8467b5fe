// Enumerations shared between configuration, layout and rendering code live
// here so that config parsing does not have to import layout packages.
package common

// Specification of requested output type.
// ENUM(pdf, docx, both)
type OutputFmt int

func (o OutputFmt) WantPDF() bool {
	return o == OutputFmtPdf || o == OutputFmtBoth
}

func (o OutputFmt) WantDOCX() bool {
	return o == OutputFmtDocx || o == OutputFmtBoth
}

// Supported page sizes.
// ENUM(a4, letter, a3, legal)
type PageSize int

// Dims returns page width and height in points.
func (x PageSize) Dims() (w, h float64) {
	switch x {
	case PageSizeLetter:
		return 612, 792
	case PageSizeA3:
		return 841.89, 1190.55
	case PageSizeLegal:
		return 612, 1008
	default:
		return 595.28, 841.89
	}
}

// Content density classification driving theme adjustments.
// ENUM(sparse, balanced, dense)
type DensityTier int
