package pdf

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

// fpdf実装。usecase側はDocumentインターフェースしか知らない。
type Document struct {
	pdf *fpdf.Fpdf
}

// A4縦・pt単位。座標はレポート側が決める。
func NewDocument() *Document {
	p := fpdf.New("P", "pt", "A4", "")
	p.SetAutoPageBreak(false, 0)
	p.SetFont("Helvetica", "", 12)
	p.AddPage()
	return &Document{pdf: p}
}

func (d *Document) Text(x float64, y float64, s string) {
	d.pdf.Text(x, y, s)
}

func (d *Document) PageBreak() {
	d.pdf.AddPage()
}

func (d *Document) Finalize() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
