// ABOUTME: Download handler for the Huma API
// ABOUTME: Streams a ZIP archive of thumbnails for one page of search results

package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"imagesearch-app-api/core/domain"
	"imagesearch-app-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// ArchiveService interface defines the methods needed from the archive service
type ArchiveService interface {
	BuildPageArchive(ctx context.Context, query string, page, perPage int) (*domain.Archive, error)
}

// DownloadHandler handles archive download HTTP requests
type DownloadHandler struct {
	archiveService ArchiveService
	logger         interfaces.Logger
}

// NewDownloadHandler creates a new download handler. logger may be nil.
func NewDownloadHandler(archiveService ArchiveService, logger interfaces.Logger) *DownloadHandler {
	return &DownloadHandler{
		archiveService: archiveService,
		logger:         logger,
	}
}

// RegisterRoutes registers the download route
func (h *DownloadHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "downloadImages",
		Method:      http.MethodGet,
		Path:        "/download",
		Summary:     "Download a page of images as a ZIP archive",
		Description: "Fetches the thumbnails for one page of results and returns them bundled in a ZIP file",
		Tags:        []string{"Download"},
	}, h.DownloadImages)
}

// DownloadImagesInput defines the input for the DownloadImages operation
type DownloadImagesInput struct {
	Query   string `query:"query" required:"true" minLength:"1" doc:"Search term"`
	Page    int    `query:"page" default:"1" minimum:"1" maximum:"10" doc:"Page number"`
	PerPage int    `query:"per_page" default:"50" minimum:"1" maximum:"50" doc:"Results per page"`
}

// DownloadImages handles the GET /download endpoint
func (h *DownloadHandler) DownloadImages(ctx context.Context, input *DownloadImagesInput) (*huma.StreamResponse, error) {
	archive, err := h.archiveService.BuildPageArchive(ctx, input.Query, input.Page, input.PerPage)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &huma.StreamResponse{
		Body: func(ctx huma.Context) {
			ctx.SetHeader("Content-Type", "application/zip")
			ctx.SetHeader("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archive.Filename))
			h.writeArchive(ctx.BodyWriter(), archive)
		},
	}, nil
}

// writeArchive streams the archive bytes to the client. A write error here
// usually means the client disconnected mid-download, so it is logged rather
// than surfaced.
func (h *DownloadHandler) writeArchive(w io.Writer, archive *domain.Archive) {
	if _, err := w.Write(archive.Data); err != nil && h.logger != nil {
		h.logger.Warn("Archive stream interrupted", map[string]interface{}{
			"filename": archive.Filename,
			"error":    err.Error(),
		})
	}
}
