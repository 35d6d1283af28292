package id

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// New returns a 24-char lowercase hex id in ObjectID layout (time-ordered prefix).
func New() string {
	return primitive.NewObjectID().Hex()
}

// Valid reports whether s looks like an id produced by New.
func Valid(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}
