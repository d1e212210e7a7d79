package api

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/slidegenie/slidegenie-api/internal/api/shared"
	"github.com/slidegenie/slidegenie-api/internal/domain"
	"github.com/slidegenie/slidegenie-api/internal/render"
	"github.com/slidegenie/slidegenie-api/internal/service"
)

// DefaultSlideCount is used when the request omits slideCount.
const DefaultSlideCount = 5

// PresentationGenerator is the slice of the content orchestrator the handler
// depends on.
type PresentationGenerator interface {
	Generate(ctx context.Context, req service.GenerateRequest) (*domain.PresentationStructure, error)
}

// GeneratePresentationRequest is the request body for POST /api/v1/generate.
type GeneratePresentationRequest struct {
	Text       string `json:"text"       validate:"required,min=1,max=2000"`
	SlideCount int    `json:"slideCount" validate:"omitempty,min=1,max=15"`
	Type       string `json:"type"       validate:"omitempty,oneof=pptx pdf"`
	Audience   string `json:"audience"   validate:"omitempty,oneof=general technical"`
	Domain     string `json:"domain"     validate:"omitempty,oneof=general technical mathematics law medicine"`
}

// GeneratePresentationData is the payload of a successful generation.
type GeneratePresentationData struct {
	FileBase64  string                        `json:"fileBase64"`
	Filename    string                        `json:"filename"`
	ContentType string                        `json:"contentType"`
	Structure   *domain.PresentationStructure `json:"structure"`
}

// GeneratePresentationResponse is the response envelope for the endpoint.
type GeneratePresentationResponse struct {
	Status string                   `json:"status"`
	Data   GeneratePresentationData `json:"data"`
}

// GenerationHandler handles presentation generation requests.
type GenerationHandler struct {
	generator PresentationGenerator
	validator *validator.Validate
	logger    *slog.Logger
}

// NewGenerationHandler creates a GenerationHandler.
func NewGenerationHandler(generator PresentationGenerator, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{
		generator: generator,
		validator: validator.New(),
		logger:    logger,
	}
}

// GeneratePresentation handles POST /api/v1/generate requests.
func (h *GenerationHandler) GeneratePresentation(w http.ResponseWriter, r *http.Request) {
	var req GeneratePresentationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	if req.SlideCount == 0 {
		req.SlideCount = DefaultSlideCount
	}

	format, err := render.ParseFormat(req.Type)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}
	renderer, err := render.New(format)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			GetSafeErrorMessage(err), err)
		return
	}

	domainTag, err := domain.ParseDomain(req.Domain)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}
	audienceTag, err := domain.ParseAudience(req.Audience)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	structure, err := h.generator.Generate(r.Context(), service.GenerateRequest{
		Text:       req.Text,
		SlideCount: req.SlideCount,
		Domain:     domainTag,
		Audience:   audienceTag,
	})
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	fileBytes, err := renderer.Render(structure)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "rendering failed",
			"error", err,
			"topic", structure.Topic)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to render the presentation", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GeneratePresentationResponse{
		Status: "success",
		Data: GeneratePresentationData{
			FileBase64:  base64.StdEncoding.EncodeToString(fileBytes),
			Filename:    renderer.Filename(structure.Topic),
			ContentType: renderer.ContentType(),
			Structure:   structure,
		},
	})
}
