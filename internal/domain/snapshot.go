package domain

// Snapshot is the full state of the store serialized as one document: five
// top-level keys, each mapping entity ids to entities. It is both the
// persisted format and the export format.
// swagger:model Snapshot
type Snapshot struct {
	Groups         map[string]Group         `json:"groups"`
	Images         map[string]Image         `json:"images"`
	TagSuggestions map[string]TagSuggestion `json:"tag_suggestions"`
	ApprovedTags   map[string]ApprovedTag   `json:"approved_tags"`
	TagUpvotes     map[string]TagUpvote     `json:"tag_upvotes"`
}

// NewSnapshot returns an empty Snapshot with all five maps allocated.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Groups:         make(map[string]Group),
		Images:         make(map[string]Image),
		TagSuggestions: make(map[string]TagSuggestion),
		ApprovedTags:   make(map[string]ApprovedTag),
		TagUpvotes:     make(map[string]TagUpvote),
	}
}

// Clone returns a deep copy sharing no memory with the receiver.
func (s *Snapshot) Clone() *Snapshot {
	out := NewSnapshot()
	for id, g := range s.Groups {
		out.Groups[id] = g.Clone()
	}
	for id, img := range s.Images {
		out.Images[id] = img
	}
	for id, ts := range s.TagSuggestions {
		out.TagSuggestions[id] = ts.Clone()
	}
	for id, at := range s.ApprovedTags {
		out.ApprovedTags[id] = at
	}
	for id, uv := range s.TagUpvotes {
		out.TagUpvotes[id] = uv
	}
	return out
}

// SnapshotRepository persists and restores the full store state as a single
// document. Load returns (nil, nil) when no snapshot has been written yet;
// the store treats that as a valid empty start.
type SnapshotRepository interface {
	Save(snapshot *Snapshot) error
	Load() (*Snapshot, error)
}
