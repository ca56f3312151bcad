package controllers

import (
	"log/slog"
	"net/http"

	"imagetagger/internal/delivery/http/helpers"
	"imagetagger/internal/services"
)

// SuggestAITagRequest is the request body for POST /ai/suggest-tag.
type SuggestAITagRequest struct {
	GroupName    string   `json:"group_name"`
	ImageName    string   `json:"image_name"`
	ImageURL     string   `json:"image_url"`
	ApprovedTags []string `json:"approved_tags"`
	RejectedTags []string `json:"rejected_tags"`
	PendingTags  []string `json:"pending_tags"`
}

// Validate implements Validator.
func (r SuggestAITagRequest) Validate() []string {
	if r.ImageURL == "" {
		return []string{"image_url is required"}
	}
	return nil
}

// ChatRequest is the request body for POST /ai/chat.
type ChatRequest struct {
	Message string                   `json:"message"`
	Stats   services.CollectionStats `json:"stats"`
}

// Validate implements Validator.
func (r ChatRequest) Validate() []string {
	if r.Message == "" {
		return []string{"message is required"}
	}
	return nil
}

type AssistController struct {
	Logger *slog.Logger
	Assist *services.AssistService
}

func NewAssistController(logger *slog.Logger, assist *services.AssistService) *AssistController {
	return &AssistController{Logger: logger, Assist: assist}
}

// SuggestTag godoc
// @Summary Ask the model for a tag suggestion
// @Description Downloads the image, sends it to the completion model together with the tags that already exist, and returns a single new tag.
// @Tags ai
// @Accept json
// @Produce json
// @Param request body SuggestAITagRequest true "Image and existing tags"
// @Success 200 {object} helpers.APIResponse "data contains {suggestion}"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /ai/suggest-tag [post]
func (c *AssistController) SuggestTag(w http.ResponseWriter, r *http.Request) {
	var req SuggestAITagRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	suggestion, err := c.Assist.SuggestTag(r.Context(), services.TagSuggestionParams{
		GroupName:    req.GroupName,
		ImageName:    req.ImageName,
		ImageURL:     req.ImageURL,
		ApprovedTags: req.ApprovedTags,
		RejectedTags: req.RejectedTags,
		PendingTags:  req.PendingTags,
	})
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"suggestion": suggestion})
}

// Chat godoc
// @Summary Chat about the collection
// @Description Answers a free-form question using the supplied collection statistics as context.
// @Tags ai
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Message and collection stats"
// @Success 200 {object} helpers.APIResponse "data contains {reply}"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /ai/chat [post]
func (c *AssistController) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reply, err := c.Assist.Chat(r.Context(), req.Message, req.Stats)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"reply": reply})
}
