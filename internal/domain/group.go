package domain

import (
	"time"

	"github.com/google/uuid"
)

// Group is a named collection of images shared by a set of member usernames.
// The creator is always an initial member.
// swagger:model Group
type Group struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by"`
	Members     []string  `json:"members"`
}

// NewGroup returns a Group with a fresh id, the creation time set to now, and
// the creator as its sole member.
func NewGroup(name, description, createdBy string) Group {
	return Group{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   createdBy,
		Members:     []string{createdBy},
	}
}

// HasMember reports whether username is in the member list.
func (g Group) HasMember(username string) bool {
	for _, m := range g.Members {
		if m == username {
			return true
		}
	}
	return false
}

// AddMember appends username unless it is already a member. The member list
// never contains duplicates.
func (g *Group) AddMember(username string) {
	if g.HasMember(username) {
		return
	}
	g.Members = append(g.Members, username)
}

// RemoveMember deletes username from the member list if present.
func (g *Group) RemoveMember(username string) {
	kept := g.Members[:0]
	for _, m := range g.Members {
		if m != username {
			kept = append(kept, m)
		}
	}
	g.Members = kept
}

// Clone returns a copy that shares no memory with the receiver.
func (g Group) Clone() Group {
	out := g
	out.Members = append([]string(nil), g.Members...)
	return out
}
