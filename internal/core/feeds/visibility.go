package feeds

// Visibility captures who is asking for a feed and whose wall they are
// looking at. The zero value is the fully public global feed.
type Visibility struct {
	// ViewerID is the authenticated caller, nil for anonymous traffic
	ViewerID *string

	// ScopeAuthorID restricts the feed to a single author's wall when set
	ScopeAuthorID *string
}

// Anonymous reports whether the request is eligible for the shared
// anonymous-feed cache: no viewer identity and no author scope.
func (v Visibility) Anonymous() bool {
	return v.ViewerID == nil && v.ScopeAuthorID == nil
}

// ScopedToSelf reports whether the viewer is looking at their own wall.
// This asymmetry is load-bearing: an author sees their own anonymous posts
// on their wall, while every other viewer only sees the author's
// non-anonymous posts. Without it, anonymous posts could be enumerated by
// filtering on the author.
func (v Visibility) ScopedToSelf() bool {
	return v.ViewerID != nil && v.ScopeAuthorID != nil && *v.ViewerID == *v.ScopeAuthorID
}

// HideAnonymous reports whether anonymous items must be filtered out of the
// scoped wall entirely
func (v Visibility) HideAnonymous() bool {
	return v.ScopeAuthorID != nil && !v.ScopedToSelf()
}
