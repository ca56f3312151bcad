// Package store holds the five entity collections (groups, images, tag
// suggestions, approved tags, tag upvotes) in memory, enforces the
// cross-collection integrity rules, and persists the whole state through a
// SnapshotRepository after every mutation.
package store

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"imagetagger/internal/domain"
)

// Store is the single shared mutable resource of the application. Every
// operation, read or write, runs under one exclusive critical section that
// also covers the snapshot save triggered by a mutation, so no caller ever
// observes a collection mid-mutation. Entities are value-copied across the
// boundary; callers cannot alias store state.
type Store struct {
	mu     sync.Mutex
	repo   domain.SnapshotRepository
	logger *slog.Logger
	strict bool

	groups       map[string]domain.Group
	images       map[string]domain.Image
	suggestions  map[string]domain.TagSuggestion
	approvedTags map[string]domain.ApprovedTag
	upvotes      map[string]domain.TagUpvote
}

// Option configures a Store.
type Option func(*Store)

// WithStrictPersistence makes every mutation fail closed: if the snapshot
// save fails, the in-memory change is rolled back and ErrPersistence
// returned. The default is fail open, where the change is kept and the
// failure only logged.
func WithStrictPersistence() Option {
	return func(s *Store) { s.strict = true }
}

// New returns an empty Store persisting through repo. Call Load before
// serving to restore prior state.
func New(repo domain.SnapshotRepository, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		repo:         repo,
		logger:       logger,
		groups:       make(map[string]domain.Group),
		images:       make(map[string]domain.Image),
		suggestions:  make(map[string]domain.TagSuggestion),
		approvedTags: make(map[string]domain.ApprovedTag),
		upvotes:      make(map[string]domain.TagUpvote),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces all five collections from the persisted snapshot. A missing
// snapshot leaves the store empty and is not an error; a snapshot that exists
// but cannot be read or parsed is, and the caller must refuse to serve. The
// replacement is all-or-nothing: on error the prior state is untouched.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.repo.Load()
	if err != nil {
		return fmt.Errorf("%w: load snapshot: %v", domain.ErrPersistence, err)
	}
	if snap == nil {
		s.logger.Info("no snapshot found, starting empty")
		return nil
	}
	s.restoreLocked(snap)
	s.logger.Info("snapshot loaded",
		"groups", len(s.groups),
		"images", len(s.images),
		"tag_suggestions", len(s.suggestions),
		"approved_tags", len(s.approvedTags),
		"tag_upvotes", len(s.upvotes),
	)
	return nil
}

// Save writes the current state unconditionally. Used by the admin save
// endpoint and the shutdown path.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Save(s.snapshotLocked()); err != nil {
		return fmt.Errorf("%w: save snapshot: %v", domain.ErrPersistence, err)
	}
	return nil
}

// Export returns a read-only deep copy of all five collections, structurally
// identical to the persisted snapshot.
func (s *Store) Export() *domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// snapshotLocked builds a deep copy of the current state. Caller holds mu.
func (s *Store) snapshotLocked() *domain.Snapshot {
	snap := &domain.Snapshot{
		Groups:         s.groups,
		Images:         s.images,
		TagSuggestions: s.suggestions,
		ApprovedTags:   s.approvedTags,
		TagUpvotes:     s.upvotes,
	}
	return snap.Clone()
}

// restoreLocked replaces all collections with the snapshot's. Caller holds mu.
func (s *Store) restoreLocked(snap *domain.Snapshot) {
	clone := snap.Clone()
	s.groups = clone.Groups
	s.images = clone.Images
	s.suggestions = clone.TagSuggestions
	s.approvedTags = clone.ApprovedTags
	s.upvotes = clone.TagUpvotes
}

// mutate runs fn under the lock and persists the result. In strict mode a
// failed save rolls the mutation back; otherwise the failure is logged and
// the in-memory change kept.
func (s *Store) mutate(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var undo *domain.Snapshot
	if s.strict {
		undo = s.snapshotLocked()
	}
	if err := fn(); err != nil {
		return err
	}
	if err := s.repo.Save(s.snapshotLocked()); err != nil {
		if s.strict {
			s.restoreLocked(undo)
			return fmt.Errorf("%w: save snapshot: %v", domain.ErrPersistence, err)
		}
		s.logger.Error("snapshot save failed, keeping in-memory state", "err", err)
	}
	return nil
}

// --- Group operations ---

// CreateGroup inserts a new group with creator as its sole member.
func (s *Store) CreateGroup(name, description, createdBy string) (domain.Group, error) {
	var g domain.Group
	err := s.mutate(func() error {
		g = domain.NewGroup(name, description, createdBy)
		s.groups[g.ID] = g
		return nil
	})
	return g.Clone(), err
}

// Group returns the group with the given id.
func (s *Store) Group(id string) (domain.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[id]
	if !ok {
		return domain.Group{}, fmt.Errorf("%w: group %s", domain.ErrNotFound, id)
	}
	return g.Clone(), nil
}

// Groups returns all groups. Order is unspecified.
func (s *Store) Groups() []domain.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Group, 0, len(s.groups))
	for _, g := range s.groups {
		out = append(out, g.Clone())
	}
	return out
}

// AddMember adds username to the group. Adding an existing member is a no-op.
func (s *Store) AddMember(groupID, username string) (domain.Group, error) {
	var g domain.Group
	err := s.mutate(func() error {
		cur, ok := s.groups[groupID]
		if !ok {
			return fmt.Errorf("%w: group %s", domain.ErrNotFound, groupID)
		}
		cur.AddMember(username)
		s.groups[groupID] = cur
		g = cur
		return nil
	})
	if err != nil {
		return domain.Group{}, err
	}
	return g.Clone(), nil
}

// RemoveMember removes username from the group if present.
func (s *Store) RemoveMember(groupID, username string) (domain.Group, error) {
	var g domain.Group
	err := s.mutate(func() error {
		cur, ok := s.groups[groupID]
		if !ok {
			return fmt.Errorf("%w: group %s", domain.ErrNotFound, groupID)
		}
		cur.RemoveMember(username)
		s.groups[groupID] = cur
		g = cur
		return nil
	})
	if err != nil {
		return domain.Group{}, err
	}
	return g.Clone(), nil
}

// UpdateGroup overwrites the group's name and description.
func (s *Store) UpdateGroup(groupID, name, description string) (domain.Group, error) {
	var g domain.Group
	err := s.mutate(func() error {
		cur, ok := s.groups[groupID]
		if !ok {
			return fmt.Errorf("%w: group %s", domain.ErrNotFound, groupID)
		}
		cur.Name = name
		cur.Description = description
		s.groups[groupID] = cur
		g = cur
		return nil
	})
	if err != nil {
		return domain.Group{}, err
	}
	return g.Clone(), nil
}

// DeleteGroup removes the group and cascades into its images, their tag
// suggestions and approved tags, and those tags' upvotes. Never partially
// applies.
func (s *Store) DeleteGroup(id string) error {
	return s.mutate(func() error {
		if !s.deleteCascade(collectionGroups, id) {
			return fmt.Errorf("%w: group %s", domain.ErrNotFound, id)
		}
		return nil
	})
}

// --- Image operations ---

// CreateImage inserts a new image record. The group must exist; an image can
// never be created with a dangling group reference.
func (s *Store) CreateImage(filename, originalName, groupID, uploadedBy string) (domain.Image, error) {
	var img domain.Image
	err := s.mutate(func() error {
		if _, ok := s.groups[groupID]; !ok {
			return fmt.Errorf("%w: group %s", domain.ErrNotFound, groupID)
		}
		img = domain.NewImage(filename, originalName, groupID, uploadedBy)
		s.images[img.ID] = img
		return nil
	})
	return img, err
}

// Image returns the image with the given id.
func (s *Store) Image(id string) (domain.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	img, ok := s.images[id]
	if !ok {
		return domain.Image{}, fmt.Errorf("%w: image %s", domain.ErrNotFound, id)
	}
	return img, nil
}

// UserImages returns every image in a group the user is a member of. The view
// is recomputed from current membership on every call.
func (s *Store) UserImages(username string) []domain.Image {
	s.mu.Lock()
	defer s.mu.Unlock()

	memberOf := make(map[string]struct{})
	for id, g := range s.groups {
		if g.HasMember(username) {
			memberOf[id] = struct{}{}
		}
	}
	out := make([]domain.Image, 0)
	for _, img := range s.images {
		if _, ok := memberOf[img.GroupID]; ok {
			out = append(out, img)
		}
	}
	return out
}

// DeleteImage removes the image and cascades into its tag suggestions and
// approved tags, and those tags' upvotes.
func (s *Store) DeleteImage(id string) error {
	return s.mutate(func() error {
		if !s.deleteCascade(collectionImages, id) {
			return fmt.Errorf("%w: image %s", domain.ErrNotFound, id)
		}
		return nil
	})
}

// --- Tag lifecycle operations ---

// SuggestTag creates a pending tag suggestion for the image.
func (s *Store) SuggestTag(imageID, tag, suggestedBy string) (domain.TagSuggestion, error) {
	var ts domain.TagSuggestion
	err := s.mutate(func() error {
		ts = domain.NewTagSuggestion(imageID, tag, suggestedBy)
		s.suggestions[ts.ID] = ts
		return nil
	})
	return ts, err
}

// ReviewTag records the verdict on a suggestion. Approving creates a new
// ApprovedTag with zero upvotes. Re-reviewing a suggestion overwrites the
// previous verdict; only approved and rejected are accepted.
func (s *Store) ReviewTag(suggestionID string, verdict domain.ReviewStatus, reviewedBy string) (domain.TagSuggestion, error) {
	if verdict != domain.StatusApproved && verdict != domain.StatusRejected {
		return domain.TagSuggestion{}, fmt.Errorf("%w: review status %q", domain.ErrValidation, verdict)
	}
	var ts domain.TagSuggestion
	err := s.mutate(func() error {
		cur, ok := s.suggestions[suggestionID]
		if !ok {
			return fmt.Errorf("%w: tag suggestion %s", domain.ErrNotFound, suggestionID)
		}
		now := time.Now().UTC()
		cur.Status = verdict
		cur.ReviewedBy = reviewedBy
		cur.ReviewedAt = &now
		s.suggestions[suggestionID] = cur
		if verdict == domain.StatusApproved {
			at := domain.NewApprovedTag(cur.ImageID, cur.Tag, reviewedBy)
			s.approvedTags[at.ID] = at
		}
		ts = cur.Clone()
		return nil
	})
	if err != nil {
		return domain.TagSuggestion{}, err
	}
	return ts, nil
}

// DeleteApprovedTag removes the approved tag and every upvote referencing it.
func (s *Store) DeleteApprovedTag(id string) error {
	return s.mutate(func() error {
		if !s.deleteCascade(collectionApprovedTags, id) {
			return fmt.Errorf("%w: approved tag %s", domain.ErrNotFound, id)
		}
		return nil
	})
}

// ToggleUpvote adds the user's upvote to the tag, or removes it if already
// present. It returns the tag after the toggle and whether the upvote now
// exists. The count is clamped at zero.
func (s *Store) ToggleUpvote(tagID, userID string) (domain.ApprovedTag, bool, error) {
	var (
		tag     domain.ApprovedTag
		upvoted bool
	)
	err := s.mutate(func() error {
		cur, ok := s.approvedTags[tagID]
		if !ok {
			return fmt.Errorf("%w: approved tag %s", domain.ErrNotFound, tagID)
		}
		existingID := ""
		for id, uv := range s.upvotes {
			if uv.TagID == tagID && uv.UserID == userID {
				existingID = id
				break
			}
		}
		if existingID != "" {
			delete(s.upvotes, existingID)
			cur.Upvotes--
			if cur.Upvotes < 0 {
				cur.Upvotes = 0
			}
			upvoted = false
		} else {
			uv := domain.NewTagUpvote(tagID, userID)
			s.upvotes[uv.ID] = uv
			cur.Upvotes++
			upvoted = true
		}
		s.approvedTags[tagID] = cur
		tag = cur
		return nil
	})
	if err != nil {
		return domain.ApprovedTag{}, false, err
	}
	return tag, upvoted, nil
}

// HasUpvoted reports whether the user currently has an upvote on the tag.
func (s *Store) HasUpvoted(tagID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, uv := range s.upvotes {
		if uv.TagID == tagID && uv.UserID == userID {
			return true
		}
	}
	return false
}

// --- Filtered reads ---

// TagSuggestions returns every tag suggestion. Order is unspecified.
func (s *Store) TagSuggestions() []domain.TagSuggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.TagSuggestion, 0, len(s.suggestions))
	for _, ts := range s.suggestions {
		out = append(out, ts.Clone())
	}
	return out
}

// PendingSuggestions returns the suggestions still awaiting review.
func (s *Store) PendingSuggestions() []domain.TagSuggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.TagSuggestion, 0)
	for _, ts := range s.suggestions {
		if ts.Status == domain.StatusPending {
			out = append(out, ts.Clone())
		}
	}
	return out
}

// ApprovedTags returns every approved tag. Order is unspecified.
func (s *Store) ApprovedTags() []domain.ApprovedTag {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ApprovedTag, 0, len(s.approvedTags))
	for _, at := range s.approvedTags {
		out = append(out, at)
	}
	return out
}

// ImageTags returns the tag suggestions made for the image, whatever their
// status.
func (s *Store) ImageTags(imageID string) []domain.TagSuggestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.TagSuggestion, 0)
	for _, ts := range s.suggestions {
		if ts.ImageID == imageID {
			out = append(out, ts.Clone())
		}
	}
	return out
}

// TagUpvotes returns the upvotes currently on the tag.
func (s *Store) TagUpvotes(tagID string) []domain.TagUpvote {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.TagUpvote, 0)
	for _, uv := range s.upvotes {
		if uv.TagID == tagID {
			out = append(out, uv)
		}
	}
	return out
}
