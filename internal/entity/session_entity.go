// FILE: internal/entity/session_entity.go
package entity

import "time"

// Session is the server-held record behind one logged-in client. The client
// keeps only the opaque token and rehydrates by presenting it again.
type Session struct {
	Token        string
	Username     string
	CreatedAt    time.Time
	LastActivity time.Time

	// Selections holds the comparison picks per catalog key (set semantics,
	// stored as a slice to keep insertion order for rendering).
	Selections map[string][]string
}

// Clone returns a deep copy. The session store hands out clones so that a
// request mutating its session never aliases another request's view.
func (s *Session) Clone() *Session {
	clone := *s
	clone.Selections = make(map[string][]string, len(s.Selections))
	for catalog, ids := range s.Selections {
		clone.Selections[catalog] = append([]string{}, ids...)
	}
	return &clone
}

// Selected reports whether productId is currently picked in the catalog.
func (s *Session) Selected(catalog, productId string) bool {
	for _, id := range s.Selections[catalog] {
		if id == productId {
			return true
		}
	}
	return false
}
