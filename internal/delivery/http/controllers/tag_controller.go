package controllers

import (
	"log/slog"
	"net/http"

	"imagetagger/internal/delivery/http/helpers"
	"imagetagger/internal/domain"
	"imagetagger/internal/services"
	"imagetagger/internal/store"
)

// SuggestTagRequest is the request body for POST /tags/suggest.
type SuggestTagRequest struct {
	ImageID     string `json:"image_id"`
	Tag         string `json:"tag"`
	SuggestedBy string `json:"suggested_by"`
}

// Validate implements Validator.
func (r SuggestTagRequest) Validate() []string {
	var errs []string
	if r.ImageID == "" {
		errs = append(errs, "image_id is required")
	}
	if r.Tag == "" {
		errs = append(errs, "tag is required")
	}
	if r.SuggestedBy == "" {
		errs = append(errs, "suggested_by is required")
	}
	return errs
}

// ReviewTagRequest is the request body for POST /tags/review.
type ReviewTagRequest struct {
	SuggestionID string `json:"suggestion_id"`
	Status       string `json:"status"`
	ReviewedBy   string `json:"reviewed_by"`
}

// Validate implements Validator.
func (r ReviewTagRequest) Validate() []string {
	var errs []string
	if r.SuggestionID == "" {
		errs = append(errs, "suggestion_id is required")
	}
	if r.Status == "" {
		errs = append(errs, "status is required")
	}
	if r.ReviewedBy == "" {
		errs = append(errs, "reviewed_by is required")
	}
	return errs
}

// UpvoteTagRequest is the request body for POST /tags/upvote.
type UpvoteTagRequest struct {
	TagID  string `json:"tag_id"`
	UserID string `json:"user_id"`
}

// Validate implements Validator.
func (r UpvoteTagRequest) Validate() []string {
	var errs []string
	if r.TagID == "" {
		errs = append(errs, "tag_id is required")
	}
	if r.UserID == "" {
		errs = append(errs, "user_id is required")
	}
	return errs
}

// UpvoteResponse is the payload returned by POST /tags/upvote.
type UpvoteResponse struct {
	Tag     domain.ApprovedTag `json:"tag"`
	Upvoted bool               `json:"upvoted"`
}

type TagController struct {
	Logger   *slog.Logger
	Store    *store.Store
	Notifier *services.ReviewNotifier
}

func NewTagController(logger *slog.Logger, s *store.Store, notifier *services.ReviewNotifier) *TagController {
	return &TagController{Logger: logger, Store: s, Notifier: notifier}
}

// Suggest godoc
// @Summary Suggest a tag for an image
// @Tags tags
// @Accept json
// @Produce json
// @Param suggestion body SuggestTagRequest true "Suggestion"
// @Success 201 {object} helpers.APIResponse "data contains the pending suggestion"
// @Router /tags/suggest [post]
func (c *TagController) Suggest(w http.ResponseWriter, r *http.Request) {
	var req SuggestTagRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ts, err := c.Store.SuggestTag(req.ImageID, req.Tag, req.SuggestedBy)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, ts)
}

// Review godoc
// @Summary Review a tag suggestion
// @Description Approving creates a new approved tag with zero upvotes. Only "approved" and "rejected" are accepted verdicts.
// @Tags tags
// @Accept json
// @Produce json
// @Param review body ReviewTagRequest true "Verdict"
// @Success 200 {object} helpers.APIResponse "data contains the reviewed suggestion"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (unknown status)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /tags/review [post]
func (c *TagController) Review(w http.ResponseWriter, r *http.Request) {
	var req ReviewTagRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	verdict, err := domain.ParseReviewStatus(req.Status)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	ts, err := c.Store.ReviewTag(req.SuggestionID, verdict, req.ReviewedBy)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	if c.Notifier != nil {
		c.Notifier.NotifyReviewed(r.Context(), ts)
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ts)
}

// Upvote godoc
// @Summary Toggle an upvote on an approved tag
// @Description A second call with the same user removes the upvote.
// @Tags tags
// @Accept json
// @Produce json
// @Param upvote body UpvoteTagRequest true "Tag and voter"
// @Success 200 {object} helpers.APIResponse "data contains the tag and whether the upvote now exists"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /tags/upvote [post]
func (c *TagController) Upvote(w http.ResponseWriter, r *http.Request) {
	var req UpvoteTagRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	tag, upvoted, err := c.Store.ToggleUpvote(req.TagID, req.UserID)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, UpvoteResponse{Tag: tag, Upvoted: upvoted})
}

// CheckUpvote godoc
// @Summary Check whether a user has upvoted a tag
// @Tags tags
// @Produce json
// @Param tag_id path string true "Approved tag id"
// @Param user_id path string true "Username"
// @Success 200 {object} helpers.APIResponse "data contains {upvoted}"
// @Router /tags/upvote/{tag_id}/{user_id} [get]
func (c *TagController) CheckUpvote(w http.ResponseWriter, r *http.Request) {
	upvoted := c.Store.HasUpvoted(r.PathValue("tag_id"), r.PathValue("user_id"))
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"upvoted": upvoted})
}

// DeleteApproved godoc
// @Summary Delete an approved tag
// @Description Removes the tag and every upvote referencing it.
// @Tags tags
// @Produce json
// @Param tag_id path string true "Approved tag id"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /tags/approved/{tag_id} [delete]
func (c *TagController) DeleteApproved(w http.ResponseWriter, r *http.Request) {
	if err := c.Store.DeleteApprovedTag(r.PathValue("tag_id")); err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "approved tag removed"})
}

// ListSuggestions godoc
// @Summary List all tag suggestions
// @Tags tags
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is the list of suggestions"
// @Router /tags [get]
func (c *TagController) ListSuggestions(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Store.TagSuggestions())
}

// ListPending godoc
// @Summary List suggestions pending review
// @Tags tags
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is the list of pending suggestions"
// @Router /tags/pending [get]
func (c *TagController) ListPending(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Store.PendingSuggestions())
}

// ListApproved godoc
// @Summary List approved tags
// @Tags tags
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is the list of approved tags"
// @Router /tags/approved [get]
func (c *TagController) ListApproved(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Store.ApprovedTags())
}

// ImageTags godoc
// @Summary List tag suggestions for an image
// @Tags tags
// @Produce json
// @Param image_id path string true "Image id"
// @Success 200 {object} helpers.APIResponse "data is the list of suggestions for the image"
// @Router /tags/image/{image_id} [get]
func (c *TagController) ImageTags(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Store.ImageTags(r.PathValue("image_id")))
}

// TagUpvotes godoc
// @Summary List upvotes on an approved tag
// @Tags tags
// @Produce json
// @Param tag_id path string true "Approved tag id"
// @Success 200 {object} helpers.APIResponse "data is the list of upvotes"
// @Router /tags/upvotes/{tag_id} [get]
func (c *TagController) TagUpvotes(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Store.TagUpvotes(r.PathValue("tag_id")))
}
