package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doclens/internal/domain"
	"doclens/internal/service"
)

// FieldInput is a caller-supplied key/value pair observed by an upstream
// OCR or vision stage.
type FieldInput struct {
	Key        string  `json:"key" binding:"required"`
	Value      string  `json:"value" binding:"required"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

// HintInput carries optional caller context.
type HintInput struct {
	SuggestedCategory string `json:"suggested_category"`
	PersonName        string `json:"person_name"`
}

// AnalyzeRequest is the request body for classify and analyze endpoints.
type AnalyzeRequest struct {
	OCRText string       `json:"ocr_text" binding:"required"`
	Fields  []FieldInput `json:"fields"`
	Hint    HintInput    `json:"hint"`
}

// ExtractRequest is the request body for the extract endpoint. Category is
// optional; when omitted the text is classified first.
type ExtractRequest struct {
	OCRText  string    `json:"ocr_text" binding:"required"`
	Category string    `json:"category"`
	Hint     HintInput `json:"hint"`
}

// CardDetailsRequest is the request body for the card-details endpoint.
type CardDetailsRequest struct {
	OCRText string `json:"ocr_text" binding:"required"`
}

// ClassifyResponse is the response body for the classify endpoint.
type ClassifyResponse struct {
	Category    domain.DocumentCategory `json:"category"`
	Confidence  float64                 `json:"confidence"`
	Description string                  `json:"description"`
	Signals     domain.Signals          `json:"signals"`
}

// ExtractResponse is the response body for the extract endpoint.
type ExtractResponse struct {
	Category domain.DocumentCategory `json:"category"`
	Fields   []domain.Field          `json:"fields"`
}

// CategoryInfo describes one supported document category.
type CategoryInfo struct {
	Category    domain.DocumentCategory `json:"category"`
	Description string                  `json:"description"`
}

// AnalysisHandler handles document classification and extraction endpoints.
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// Classify handles POST /api/v1/classify
func (h *AnalysisHandler) Classify(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	category, confidence, signals, err := h.analysisService.Classify(c.Request.Context(), toAnalyzeInput(req))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ClassifyResponse{
		Category:    category,
		Confidence:  confidence,
		Description: domain.CategoryDescriptions[category],
		Signals:     signals,
	})
}

// Extract handles POST /api/v1/extract
func (h *AnalysisHandler) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	hint := toHint(req.Hint)
	category := domain.DocumentCategory(req.Category)
	if req.Category == "" {
		var err error
		category, _, _, err = h.analysisService.Classify(c.Request.Context(), service.AnalyzeInput{Text: req.OCRText, Hint: hint})
		if err != nil {
			HandleError(c, err)
			return
		}
	} else if !category.IsValid() {
		HandleError(c, domain.ErrUnknownCategory)
		return
	}

	fields, err := h.analysisService.Extract(c.Request.Context(), req.OCRText, category, hint)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ExtractResponse{Category: category, Fields: fields})
}

// Analyze handles POST /api/v1/analyze
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.analysisService.Analyze(c.Request.Context(), toAnalyzeInput(req))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// CardDetails handles POST /api/v1/card-details
func (h *AnalysisHandler) CardDetails(c *gin.Context) {
	var req CardDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	details, err := h.analysisService.CardDetails(req.OCRText)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, details)
}

// Types handles GET /api/v1/types
func (h *AnalysisHandler) Types(c *gin.Context) {
	infos := make([]CategoryInfo, 0, len(domain.AllCategories))
	for _, cat := range domain.AllCategories {
		infos = append(infos, CategoryInfo{Category: cat, Description: domain.CategoryDescriptions[cat]})
	}
	RespondOK(c, infos)
}

func toAnalyzeInput(req AnalyzeRequest) service.AnalyzeInput {
	fields := make([]domain.Field, 0, len(req.Fields))
	for _, f := range req.Fields {
		source := domain.FieldSource(f.Source)
		if source == "" {
			source = domain.SourceNLEntity
		}
		confidence := f.Confidence
		if confidence == 0 {
			confidence = 0.5
		}
		fields = append(fields, domain.NewField(f.Key, f.Value, confidence, source))
	}
	return service.AnalyzeInput{
		Text:   req.OCRText,
		Fields: fields,
		Hint:   toHint(req.Hint),
	}
}

func toHint(h HintInput) domain.Hint {
	return domain.Hint{
		SuggestedCategory: domain.DocumentCategory(h.SuggestedCategory),
		PersonName:        h.PersonName,
	}
}
