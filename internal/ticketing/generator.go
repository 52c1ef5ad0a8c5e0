// Package ticketing produces the scannable ticket a customer shows at
// the door: an HMAC-signed QR payload rendered as PNG and embedded in a
// printable PDF.
package ticketing

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"barkeep/pkg/model"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// Issuer is what the booking flow calls once a booking is persisted.
// Failures propagate unchanged to the caller.
type Issuer interface {
	Issue(ctx context.Context, booking *model.Booking) (string, error)
}

type Generator struct {
	secret []byte
	images ImageStore
	now    func() time.Time
}

func NewGenerator(secret string, images ImageStore) *Generator {
	return &Generator{
		secret: []byte(secret),
		images: images,
		now:    time.Now,
	}
}

// Payload builds the signed QR content: bookingID|accountID|timestamp|signature.
func (g *Generator) Payload(booking *model.Booking) string {
	data := fmt.Sprintf("%s|%s|%d", booking.ID, booking.AccountID, g.now().Unix())

	h := hmac.New(sha256.New, g.secret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return data + "|" + sig
}

// Verify checks a scanned payload's signature and returns the booking ID.
func (g *Generator) Verify(payload string) (string, error) {
	parts := strings.Split(payload, "|")
	if len(parts) != 4 {
		return "", fmt.Errorf("malformed ticket payload")
	}

	data := strings.Join(parts[:3], "|")
	h := hmac.New(sha256.New, g.secret)
	h.Write([]byte(data))
	want := base64.StdEncoding.EncodeToString(h.Sum(nil))

	if !hmac.Equal([]byte(want), []byte(parts[3])) {
		return "", fmt.Errorf("ticket signature mismatch")
	}
	if _, err := strconv.ParseInt(parts[2], 10, 64); err != nil {
		return "", fmt.Errorf("malformed ticket timestamp")
	}

	return parts[0], nil
}

// Issue renders the QR and PDF for a booking, stores both, and returns
// the URL of the printable ticket.
func (g *Generator) Issue(ctx context.Context, booking *model.Booking) (string, error) {
	payload := g.Payload(booking)

	qrPNG, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}

	if _, err := g.images.Save(ctx, "ticket-"+booking.ID+".png", qrPNG); err != nil {
		return "", err
	}

	pdfBytes, err := g.renderPDF(booking, qrPNG)
	if err != nil {
		return "", err
	}

	url, err := g.images.Save(ctx, "ticket-"+booking.ID+".pdf", pdfBytes)
	if err != nil {
		return "", err
	}

	return url, nil
}

func (g *Generator) renderPDF(booking *model.Booking, qrPNG []byte) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Table Booking")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Booking ID: %s", booking.ID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s at %s", booking.BookingDate, booking.BookingClock))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Tables: %d", len(booking.Tables)))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{
		ImageType: "PNG",
	}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render ticket PDF: %w", err)
	}

	return buf.Bytes(), nil
}
