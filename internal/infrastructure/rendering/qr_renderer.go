package rendering

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"strings"

	"liquidation_backoffice/internal/usecase/interfaces"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

const (
	DefaultSize  = 256
	MinSize      = 64
	MaxSize      = 1024
	DefaultLevel = "M"
)

var ErrEmptyPayload = errors.New("empty payment reference payload")

// QRRenderer draws payment references as PNG QR codes.
type QRRenderer struct{}

var _ interfaces.IPaymentReferenceRenderer = (*QRRenderer)(nil)

func NewQRRenderer() *QRRenderer {
	return &QRRenderer{}
}

// Render clamps size to [MinSize, MaxSize] (0 means DefaultSize) and falls
// back to level M for anything other than L, M, Q or H.
func (r *QRRenderer) Render(payload string, size int, level string) ([]byte, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}

	code, err := qr.Encode(payload, parseLevel(level), qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	side := ClampSize(size)
	scaled, err := barcode.Scale(code, side, side)
	if err != nil {
		return nil, fmt.Errorf("scale qr to %dpx: %w", side, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func ClampSize(size int) int {
	switch {
	case size <= 0:
		return DefaultSize
	case size < MinSize:
		return MinSize
	case size > MaxSize:
		return MaxSize
	}
	return size
}

func parseLevel(level string) qr.ErrorCorrectionLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "L":
		return qr.L
	case "Q":
		return qr.Q
	case "H":
		return qr.H
	}
	return qr.M
}
