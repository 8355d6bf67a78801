package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"clientmap-api/internal/export"
	"clientmap-api/internal/models"

	"github.com/gin-gonic/gin"
)

// ClientService interface for dependency injection
type ClientService interface {
	List(ctx context.Context) ([]models.Client, error)
	Search(ctx context.Context, term string) ([]models.Client, error)
	SearchRanked(ctx context.Context, term string) ([]models.Client, error)
	Stats(ctx context.Context) (*models.Stats, error)
}

// ImportService interface for dependency injection
type ImportService interface {
	Import(ctx context.Context, filename string, r io.Reader) (*models.ImportResult, error)
	Clear(ctx context.Context) error
}

// ClientHandler handles the client records endpoints
type ClientHandler struct {
	clients   ClientService
	importer  ImportService
	maxUpload int64
}

// NewClientHandler creates a new client handler. maxUploadMB caps the size of imported documents.
func NewClientHandler(clients ClientService, importer ImportService, maxUploadMB int64) *ClientHandler {
	return &ClientHandler{clients: clients, importer: importer, maxUpload: maxUploadMB << 20}
}

// List godoc
// @Summary      List clients
// @Description  Returns every stored client ordered by name
// @Tags         clients
// @Produce      json
// @Success      200  {array}   models.Client
// @Failure      503  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// Search godoc
// @Summary      Search clients
// @Description  Case-insensitive substring match on name, legal name and identifier of mappable clients
// @Tags         clients
// @Produce      json
// @Param        q    query     string  true  "search term"
// @Success      200  {array}   models.Client
// @Failure      400  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /clients/search [get]
func (h *ClientHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		badRequest(c, "missing required query parameter 'q'")
		return
	}

	clients, err := h.clients.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// Ranked godoc
// @Summary      Ranked client search
// @Description  Matches name and legal name and orders hits by name prefix, legal name prefix, then substring
// @Tags         clients
// @Produce      json
// @Param        q    query     string  true  "search term"
// @Success      200  {array}   models.Client
// @Failure      400  {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /clients/ranked [get]
func (h *ClientHandler) Ranked(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		badRequest(c, "missing required query parameter 'q'")
		return
	}

	clients, err := h.clients.SearchRanked(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

// Stats godoc
// @Summary      Client statistics
// @Tags         clients
// @Produce      json
// @Success      200  {object}  models.Stats
// @Security     BearerAuth
// @Router       /clients/stats [get]
func (h *ClientHandler) Stats(c *gin.Context) {
	stats, err := h.clients.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Import godoc
// @Summary      Replace all clients from a spreadsheet
// @Description  Parses an .xlsx or .csv upload and replaces the stored dataset in one transaction
// @Tags         clients
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "spreadsheet with the Cliente, Razon social, Domicilio, Coord X, Coord Y, Identificador and Anulado columns"
// @Success      200   {object}  models.ImportResult
// @Failure      413   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse
// @Security     BearerAuth
// @Router       /clients/import [post]
func (h *ClientHandler) Import(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error: fmt.Sprintf("upload exceeds %d MB", h.maxUpload>>20),
			})
			return
		}
		badRequest(c, "missing multipart file field 'file'")
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, fmt.Errorf("handler: open upload: %w", err))
		return
	}
	defer file.Close()

	result, err := h.importer.Import(c.Request.Context(), header.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Clear godoc
// @Summary      Delete all clients
// @Tags         clients
// @Success      204
// @Security     BearerAuth
// @Router       /clients [delete]
func (h *ClientHandler) Clear(c *gin.Context) {
	if err := h.importer.Clear(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportXLSX godoc
// @Summary      Download clients as a spreadsheet
// @Description  The workbook uses the import column layout and can be imported back
// @Tags         clients
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Security     BearerAuth
// @Router       /clients/export.xlsx [get]
func (h *ClientHandler) ExportXLSX(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	data, err := export.BuildClientsXLSX(clients)
	if err != nil {
		respondError(c, err)
		return
	}
	attachment(c, "clientes.xlsx", export.ContentTypeXLSX, data)
}

// ExportPDF godoc
// @Summary      Download clients as a PDF listing
// @Tags         clients
// @Produce      application/pdf
// @Success      200  {file}  file
// @Security     BearerAuth
// @Router       /clients/export.pdf [get]
func (h *ClientHandler) ExportPDF(c *gin.Context) {
	ctx := c.Request.Context()

	clients, err := h.clients.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	stats, err := h.clients.Stats(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	data, err := export.BuildClientsPDF(clients, stats, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	attachment(c, "clientes.pdf", export.ContentTypePDF, data)
}

func attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, data)
}
