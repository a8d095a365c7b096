package http

import (
	"time"

	"github.com/MKhiriev/go-places/internal/config"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/service"
)

// multipartOverhead is added to the image size limit to bound the whole
// multipart body, which also carries the text fields.
const multipartOverhead = 1 << 20

type Handler struct {
	services *service.Services

	imagesDir      string
	maxImageSize   int64
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, server config.Server, files config.Files, logger *logger.Logger) *Handler {
	logger.Info().
		Str("images_dir", files.ImagesDir).
		Dur("request_timeout", server.RequestTimeout).
		Msg("http handler created")
	return &Handler{
		services:       services,
		imagesDir:      files.ImagesDir,
		maxImageSize:   files.MaxImageSize,
		requestTimeout: server.RequestTimeout,
		logger:         logger,
	}
}

// maxBodySize is the largest request body accepted on upload routes.
func (h *Handler) maxBodySize() int64 {
	return h.maxImageSize + multipartOverhead
}
