package models

// InsertResult acknowledges a single-document insert.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult acknowledges a single-document update.
type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

// DeleteResult acknowledges a single-document delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// MessageResponse is returned instead of a store acknowledgment when a
// request was a no-op.
type MessageResponse struct {
	Message string `json:"message"`
}
