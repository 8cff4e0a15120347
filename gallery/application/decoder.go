package application

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/disintegration/imaging"

	"github.com/mrozco/galleria/gallery/domain"
)

// RawInput is one item of an ingestion batch as delivered by the
// presentation layer, whether it came from the file picker, a drag-drop, or
// a clipboard paste.
type RawInput struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// decodeInput reads one raw input fully, probes its pixel dimensions, and
// produces the embeddable data URL the rest of the system treats as opaque.
// If either step fails the whole input is rejected; no partial result
// escapes.
func decodeInput(in RawInput) (data string, width, height int, err error) {
	raw, err := io.ReadAll(in.Content)
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: %v", domain.ErrUnreadable, err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: %v", domain.ErrUndecodable, err)
	}

	bounds := img.Bounds()
	data = "data:" + in.ContentType + ";base64," + base64.StdEncoding.EncodeToString(raw)
	return data, bounds.Dx(), bounds.Dy(), nil
}
