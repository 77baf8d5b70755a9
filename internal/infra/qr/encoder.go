package qr

import (
	"washclub/internal/pkg/errs"

	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 256

// Encoder renders a code payload into a PNG QR image.
type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) EncodePNG(payload []byte) ([]byte, error) {
	png, err := qrcode.Encode(string(payload), qrcode.Medium, imageSize)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode QR image")
	}
	return png, nil
}
