// Package models contains data structures for the application's domain models.
package models

import "go.mongodb.org/mongo-driver/v2/bson"

// NewID returns a fresh 24-character hex document id. Ids generated by one
// process sort in creation order.
func NewID() string {
	return bson.NewObjectID().Hex()
}

// ValidID reports whether s is a well-formed document id.
func ValidID(s string) bool {
	_, err := bson.ObjectIDFromHex(s)
	return err == nil
}
