package models

// VoteKind selects which counter a vote increments.
type VoteKind string

const (
	VoteUp   VoteKind = "upVote"
	VoteDown VoteKind = "downVote"
)

// Valid reports whether k is a known vote kind.
func (k VoteKind) Valid() bool {
	return k == VoteUp || k == VoteDown
}

// Field returns the post counter the vote increments.
func (k VoteKind) Field() string {
	if k == VoteUp {
		return "upVote"
	}
	return "downVote"
}

// ParseVoteKind converts a client-supplied vote type. With legacy set, any
// value other than "upVote" counts as a downvote.
func ParseVoteKind(raw string, legacy bool) (VoteKind, error) {
	kind := VoteKind(raw)
	if kind.Valid() {
		return kind, nil
	}
	if legacy {
		return VoteDown, nil
	}
	return "", NewValidationError("type must be one of: upVote downVote")
}
