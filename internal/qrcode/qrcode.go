// Package qrcode renders QR codes as SVG documents. It is stateless and never
// touches the record store.
package qrcode

import (
	"bytes"

	"github.com/aaronarduino/goqrsvg"
	svg "github.com/ajstarks/svgo"
	"github.com/boombuler/barcode/qr"
)

// blockSize is the side length in pixels of a single QR module.
const blockSize = 16

// SVG encodes content as a QR code at low error correction and renders it as
// an SVG document.
func SVG(content string) ([]byte, error) {
	code, err := qr.Encode(content, qr.L, qr.Auto)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	canvas := svg.New(&buf)
	qrSVG := goqrsvg.NewQrSVG(code, blockSize)
	qrSVG.StartQrSVG(canvas)

	if err := qrSVG.WriteQrSVG(canvas); err != nil {
		return nil, err
	}

	canvas.End()

	return buf.Bytes(), nil
}
