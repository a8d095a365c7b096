package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/store"
	"github.com/MKhiriev/go-places/internal/utils"
	"github.com/MKhiriev/go-places/models"
)

const (
	imageFormField = "image"

	// sniffLength is the number of leading bytes inspected by
	// [http.DetectContentType].
	sniffLength = 512

	// maxJSONBodySize caps bodies of routes without uploads.
	maxJSONBodySize = 64 << 10
)

var imageExtsByContentType = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// readForm decodes the body of an upload route into dst. Multipart bodies
// fill the string fields by form key and may carry an image; any other body
// is decoded as JSON and never carries one.
//
// The returned cleanup func releases the uploaded file and is never nil.
func (h *Handler) readForm(w http.ResponseWriter, r *http.Request, dst any, fields map[string]*string) (*models.ImageUpload, func(), error) {
	noop := func() {}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize())

	if !isMultipart(r) {
		if err := utils.ReadJSON(r.Body, dst); err != nil {
			return nil, noop, bodyError(err)
		}
		return nil, noop, nil
	}

	if err := r.ParseMultipartForm(h.maxImageSize); err != nil {
		return nil, noop, bodyError(err)
	}
	for key, field := range fields {
		*field = r.PostFormValue(key)
	}

	image, file, err := readImage(r)
	cleanup := func() {
		if file != nil {
			file.Close()
		}
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logger.FromRequest(r).Warn().Err(err).Str("func", "*Handler.readForm").Msg("failed to remove multipart temp files")
		}
	}
	if err != nil {
		cleanup()
		return nil, noop, err
	}

	return image, cleanup, nil
}

// readImage returns the uploaded image, or nil when the form has no file.
// The type is sniffed from the content; the file name only decides between
// the "jpg" and "jpeg" extension.
func readImage(r *http.Request) (*models.ImageUpload, io.Closer, error) {
	file, header, err := r.FormFile(imageFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, bodyError(err)
	}

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		file.Close()
		return nil, nil, bodyError(err)
	}
	head = head[:n]

	ext, ok := imageExtsByContentType[http.DetectContentType(head)]
	if !ok {
		file.Close()
		return nil, nil, ErrUnsupportedImageType
	}
	if ext == "jpg" && strings.EqualFold(filepath.Ext(header.Filename), ".jpeg") {
		ext = "jpeg"
	}

	return &models.ImageUpload{
		Ext:     ext,
		Size:    header.Size,
		Content: io.MultiReader(bytes.NewReader(head), file),
	}, file, nil
}

// bodyError classifies a body decoding failure. Bodies over the size limit
// are reported as too large images since only uploads get that big.
func bodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: %w", store.ErrImageTooLarge, err)
	}
	return fmt.Errorf("%w: %w", ErrMalformedBody, err)
}

// readJSON decodes a JSON body of a route without uploads. Bodies over
// maxJSONBodySize are malformed.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)
	if err := utils.ReadJSON(r.Body, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return nil
}
