package property

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"realestate/internal/pkg/validator"
)

// MaxImageKB caps each uploaded image at 2048 KB.
const MaxImageKB = 2048

// AllowedImageTypes are the accepted sniffed content types.
var AllowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// ValidateCreate checks a create request and its uploaded files. Returns
// a ValidationError with per-field messages, or nil. Nothing is mutated
// here; the service only runs on a clean result.
func ValidateCreate(req *CreatePropertyRequest, files []*multipart.FileHeader) *ValidationError {
	fields := validator.Validate(req)
	ve := &ValidationError{Fields: fields}
	if ve.Fields == nil {
		ve.Fields = make(map[string]string)
	}

	checkImages(ve, files)

	if len(ve.Fields) == 0 {
		return nil
	}
	return ve
}

// ValidateUpdate checks a partial update: supplied fields must satisfy
// the create constraints, every delete_images id must reference an
// existing image row, and new files must pass the image checks.
func ValidateUpdate(ctx context.Context, repo Repository, req *UpdatePropertyRequest, files []*multipart.FileHeader) (*ValidationError, error) {
	fields := validator.Validate(req)
	ve := &ValidationError{Fields: fields}
	if ve.Fields == nil {
		ve.Fields = make(map[string]string)
	}

	checkImages(ve, files)

	for i, id := range req.DeleteImages {
		exists, err := repo.ImageExists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			ve.Fields[fmt.Sprintf("delete_images.%d", i)] = fmt.Sprintf("Image %d does not exist", id)
		}
	}

	if len(ve.Fields) == 0 {
		return nil, nil
	}
	return ve, nil
}

func checkImages(ve *ValidationError, files []*multipart.FileHeader) {
	for i, fh := range files {
		key := fmt.Sprintf("images.%d", i)

		if fh.Size == 0 {
			ve.Fields[key] = "The uploaded file is empty"
			continue
		}
		if fh.Size > MaxImageKB*1024 {
			ve.Fields[key] = fmt.Sprintf("The image must not exceed %d KB", MaxImageKB)
			continue
		}

		mimeType, err := sniffContentType(fh)
		if err != nil {
			ve.Fields[key] = "The uploaded file could not be read"
			continue
		}
		if !AllowedImageTypes[mimeType] {
			ve.Fields[key] = "The image must be a jpeg, png, jpg or gif file"
		}
	}
}

// sniffContentType detects the MIME type from the first 512 bytes rather
// than trusting the client-supplied header.
func sniffContentType(fh *multipart.FileHeader) (string, error) {
	file, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}

	mimeType := http.DetectContentType(buf[:n])
	return strings.Split(mimeType, ";")[0], nil
}
