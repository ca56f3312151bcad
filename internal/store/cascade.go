package store

// collection identifies one of the store's five entity maps.
type collection int

const (
	collectionGroups collection = iota
	collectionImages
	collectionSuggestions
	collectionApprovedTags
	collectionUpvotes
)

// cascadeRule declares that deleting an entity from parent also deletes every
// entity in child that references it.
type cascadeRule struct {
	parent   collection
	child    collection
	children func(s *Store, parentID string) []string
}

// cascadeRules is the single source for all cascade paths:
// group→image, image→tag-suggestion, image→approved-tag,
// approved-tag→tag-upvote. deleteCascade walks the table transitively, so a
// group delete also clears the upvotes hanging off its images' approved tags.
var cascadeRules = []cascadeRule{
	{
		parent: collectionGroups,
		child:  collectionImages,
		children: func(s *Store, parentID string) []string {
			var ids []string
			for id, img := range s.images {
				if img.GroupID == parentID {
					ids = append(ids, id)
				}
			}
			return ids
		},
	},
	{
		parent: collectionImages,
		child:  collectionSuggestions,
		children: func(s *Store, parentID string) []string {
			var ids []string
			for id, ts := range s.suggestions {
				if ts.ImageID == parentID {
					ids = append(ids, id)
				}
			}
			return ids
		},
	},
	{
		parent: collectionImages,
		child:  collectionApprovedTags,
		children: func(s *Store, parentID string) []string {
			var ids []string
			for id, at := range s.approvedTags {
				if at.ImageID == parentID {
					ids = append(ids, id)
				}
			}
			return ids
		},
	},
	{
		parent: collectionApprovedTags,
		child:  collectionUpvotes,
		children: func(s *Store, parentID string) []string {
			var ids []string
			for id, uv := range s.upvotes {
				if uv.TagID == parentID {
					ids = append(ids, id)
				}
			}
			return ids
		},
	},
}

// deleteCascade removes id from collection c and recursively deletes its
// dependents per cascadeRules. It reports whether the root entity existed.
// Caller holds mu.
func (s *Store) deleteCascade(c collection, id string) bool {
	if !s.removeLocked(c, id) {
		return false
	}
	for _, rule := range cascadeRules {
		if rule.parent != c {
			continue
		}
		for _, childID := range rule.children(s, id) {
			s.deleteCascade(rule.child, childID)
		}
	}
	return true
}

// removeLocked deletes id from the named collection, reporting whether it was
// present. Caller holds mu.
func (s *Store) removeLocked(c collection, id string) bool {
	switch c {
	case collectionGroups:
		if _, ok := s.groups[id]; !ok {
			return false
		}
		delete(s.groups, id)
	case collectionImages:
		if _, ok := s.images[id]; !ok {
			return false
		}
		delete(s.images, id)
	case collectionSuggestions:
		if _, ok := s.suggestions[id]; !ok {
			return false
		}
		delete(s.suggestions, id)
	case collectionApprovedTags:
		if _, ok := s.approvedTags[id]; !ok {
			return false
		}
		delete(s.approvedTags, id)
	case collectionUpvotes:
		if _, ok := s.upvotes[id]; !ok {
			return false
		}
		delete(s.upvotes, id)
	}
	return true
}
