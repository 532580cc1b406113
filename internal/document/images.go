package document

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image/jpeg"
	"image/png"
	"log"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

var errBadDataURL = errors.New("malformed image data url")

// decodeDataURL splits a data-URL signature image into the gofpdf image type
// and raw bytes. The format is detected from the MIME hint, jpeg/jpg means
// JPEG and anything else is treated as PNG, matching how the capture UI
// stores signatures. The bytes are decoded up front so a corrupt image can
// be skipped instead of poisoning the pdf builder.
func decodeDataURL(dataURL string) (imgType string, data []byte, err error) {
	const prefix = "data:"
	if !strings.HasPrefix(dataURL, prefix) {
		return "", nil, errBadDataURL
	}
	rest := dataURL[len(prefix):]
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", nil, errBadDataURL
	}
	mime := rest[:sep]
	payload := rest[sep+len(";base64,"):]

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}

	imgType = "PNG"
	if strings.Contains(mime, "jpeg") || strings.Contains(mime, "jpg") {
		imgType = "JPEG"
	}

	if err := validateImage(imgType, data); err != nil {
		return "", nil, err
	}
	return imgType, data, nil
}

func validateImage(imgType string, data []byte) error {
	var err error
	switch imgType {
	case "JPEG":
		_, err = jpeg.DecodeConfig(bytes.NewReader(data))
	default:
		_, err = png.DecodeConfig(bytes.NewReader(data))
	}
	return err
}

// embedDataURL places a signature image on the page. Failures are logged and
// skipped: the document renders without the signature rather than aborting.
func embedDataURL(pdf *gofpdf.Fpdf, name, dataURL string, x, y, w, h float64) bool {
	imgType, data, err := decodeDataURL(dataURL)
	if err != nil {
		log.Printf("[document][images] signature skipped name=%s err=%v", name, err)
		return false
	}
	opts := gofpdf.ImageOptions{ImageType: imgType}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return true
}

// embedLogo places raw logo bytes (PNG or JPEG, sniffed from the magic
// number). A nil or unreadable logo is silently skipped.
func embedLogo(pdf *gofpdf.Fpdf, name string, logo []byte, x, y, w, h float64) bool {
	if len(logo) == 0 {
		return false
	}
	imgType := "PNG"
	if len(logo) > 2 && logo[0] == 0xFF && logo[1] == 0xD8 {
		imgType = "JPEG"
	}
	if err := validateImage(imgType, logo); err != nil {
		log.Printf("[document][images] logo skipped err=%v", err)
		return false
	}
	opts := gofpdf.ImageOptions{ImageType: imgType}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(logo))
	pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return true
}
