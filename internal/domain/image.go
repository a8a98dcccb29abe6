package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DefaultImageMIMEType is used when the payload carries no explicit type.
const DefaultImageMIMEType = "image/jpeg"

// Image is a base64 image payload with its MIME type.
type Image struct {
	// Data is raw base64 without any data-URI prefix.
	Data     string
	MIMEType string
}

// DataURI returns the image as a data:<mime>;base64,<data> string.
func (i *Image) DataURI() string {
	return "data:" + i.MIMEType + ";base64," + i.Data
}

// ParseImage normalizes a raw base64 payload or a data-URI into an Image.
// It returns nil for an empty payload.
func ParseImage(payload string) (*Image, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, nil //nolint:nilnil // absent image is not an error
	}

	img := &Image{MIMEType: DefaultImageMIMEType, Data: payload}

	if strings.HasPrefix(payload, "data:") {
		header, data, found := strings.Cut(payload, ",")
		if !found {
			return nil, fmt.Errorf("%w: data-URI has no payload", ErrInvalidImage)
		}
		meta := strings.TrimPrefix(header, "data:")
		mime, encoding, _ := strings.Cut(meta, ";")
		if encoding != "base64" {
			return nil, fmt.Errorf("%w: data-URI is not base64 encoded", ErrInvalidImage)
		}
		if mime != "" {
			img.MIMEType = mime
		}
		img.Data = data
	}

	if _, err := base64.StdEncoding.DecodeString(img.Data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	return img, nil
}
