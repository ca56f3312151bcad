package controllers

import (
	"log/slog"
	"net/http"

	"imagetagger/internal/delivery/http/helpers"
	"imagetagger/internal/delivery/http/middleware"
	"imagetagger/internal/store"
)

// CreateGroupRequest is the request body for POST /groups.
type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate implements Validator.
func (r CreateGroupRequest) Validate() []string {
	var errs []string
	if r.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// GroupMemberRequest is the request body for add-user and remove-user.
type GroupMemberRequest struct {
	GroupID  string `json:"group_id"`
	Username string `json:"username"`
}

// Validate implements Validator.
func (r GroupMemberRequest) Validate() []string {
	var errs []string
	if r.GroupID == "" {
		errs = append(errs, "group_id is required")
	}
	if r.Username == "" {
		errs = append(errs, "username is required")
	}
	return errs
}

// UpdateGroupRequest is the request body for POST /groups/update.
type UpdateGroupRequest struct {
	GroupID     string `json:"group_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate implements Validator.
func (r UpdateGroupRequest) Validate() []string {
	var errs []string
	if r.GroupID == "" {
		errs = append(errs, "group_id is required")
	}
	if r.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// DeleteGroupRequest is the request body for POST /groups/delete.
type DeleteGroupRequest struct {
	GroupID string `json:"group_id"`
}

// Validate implements Validator.
func (r DeleteGroupRequest) Validate() []string {
	if r.GroupID == "" {
		return []string{"group_id is required"}
	}
	return nil
}

type GroupController struct {
	Logger *slog.Logger
	Store  *store.Store
}

func NewGroupController(logger *slog.Logger, s *store.Store) *GroupController {
	return &GroupController{Logger: logger, Store: s}
}

// Create godoc
// @Summary Create a group
// @Description Create a group. The authenticated user (or "admin" for anonymous requests) becomes creator and sole member.
// @Tags groups
// @Accept json
// @Produce json
// @Param group body CreateGroupRequest true "Group data"
// @Success 201 {object} helpers.APIResponse "data contains the created group"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /groups [post]
func (c *GroupController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	creator, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		creator = "admin"
	}
	g, err := c.Store.CreateGroup(req.Name, req.Description, creator)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, g)
}

// List godoc
// @Summary List groups
// @Tags groups
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is the list of groups"
// @Router /groups [get]
func (c *GroupController) List(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Store.Groups())
}

// AddUser godoc
// @Summary Add a member to a group
// @Description Adding an existing member is a no-op.
// @Tags groups
// @Accept json
// @Produce json
// @Param membership body GroupMemberRequest true "Group and username"
// @Success 200 {object} helpers.APIResponse "data contains the updated group"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /groups/add-user [post]
func (c *GroupController) AddUser(w http.ResponseWriter, r *http.Request) {
	var req GroupMemberRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	g, err := c.Store.AddMember(req.GroupID, req.Username)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, g)
}

// RemoveUser godoc
// @Summary Remove a member from a group
// @Tags groups
// @Accept json
// @Produce json
// @Param membership body GroupMemberRequest true "Group and username"
// @Success 200 {object} helpers.APIResponse "data contains the updated group"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /groups/remove-user [post]
func (c *GroupController) RemoveUser(w http.ResponseWriter, r *http.Request) {
	var req GroupMemberRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	g, err := c.Store.RemoveMember(req.GroupID, req.Username)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, g)
}

// Update godoc
// @Summary Update a group's name and description
// @Tags groups
// @Accept json
// @Produce json
// @Param group body UpdateGroupRequest true "New group data"
// @Success 200 {object} helpers.APIResponse "data contains the updated group"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /groups/update [post]
func (c *GroupController) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateGroupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	g, err := c.Store.UpdateGroup(req.GroupID, req.Name, req.Description)
	if err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, g)
}

// Delete godoc
// @Summary Delete a group
// @Description Deletes the group and cascades into its images, their tags and upvotes.
// @Tags groups
// @Accept json
// @Produce json
// @Param group body DeleteGroupRequest true "Group id"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /groups/delete [post]
func (c *GroupController) Delete(w http.ResponseWriter, r *http.Request) {
	var req DeleteGroupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Store.DeleteGroup(req.GroupID); err != nil {
		respondError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"message": "group deleted"})
}
