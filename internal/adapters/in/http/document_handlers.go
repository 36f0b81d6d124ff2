package http

import (
	"net/http"

	"lockers/internal/core/application/usecases/commands"
	"lockers/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type documentResponse struct {
	ID        uint64 `json:"id"`
	RequestID uint64 `json:"requestId"`
	DocType   string `json:"docType"`
	FileURL   string `json:"fileUrl"`
}

func toDocumentResponses(results []queries.DocumentResponse) []documentResponse {
	response := make([]documentResponse, len(results))
	for i, d := range results {
		response[i] = documentResponse{
			ID:        d.ID,
			RequestID: d.RequestID,
			DocType:   d.DocType,
			FileURL:   d.FileURL,
		}
	}
	return response
}

// AttachDocument handles POST /api/v1/documents. The body is a multipart form
// with a "file" part plus "requestId" and "docType" values.
func (s *Server) AttachDocument(ctx echo.Context) error {
	requestID, err := formID(ctx, "requestId")
	if err != nil {
		return writeError(ctx, err)
	}

	content, contentType, err := readUpload(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAttachDocumentCommand(
		principalFrom(ctx), requestID, ctx.FormValue("docType"), content, contentType,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.commands.AttachDocument.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createdResponse{ID: id})
}

// GetRequestDocuments handles GET /api/v1/documents/request/:id.
func (s *Server) GetRequestDocuments(ctx echo.Context) error {
	requestID, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetRequestDocumentsQuery(principalFrom(ctx), requestID)
	if err != nil {
		return writeError(ctx, err)
	}

	results, err := s.queries.GetRequestDocuments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDocumentResponses(results))
}

// GetUserDocuments handles GET /api/v1/documents/user/:id.
func (s *Server) GetUserDocuments(ctx echo.Context) error {
	userID, err := pathID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetUserDocumentsQuery(principalFrom(ctx), userID)
	if err != nil {
		return writeError(ctx, err)
	}

	results, err := s.queries.GetUserDocuments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDocumentResponses(results))
}
