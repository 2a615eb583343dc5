// Package mongostore implements the repository interfaces on MongoDB.
package mongostore

import (
	"time"

	"socialpod/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type userDoc struct {
	ID        bson.ObjectID `bson:"_id"`
	Email     string        `bson:"email"`
	Name      string        `bson:"name"`
	Photo     string        `bson:"photo,omitempty"`
	Role      string        `bson:"role"`
	Badge     string        `bson:"badge"`
	CreatedAt time.Time     `bson:"createdAt"`
}

func (d userDoc) model() models.User {
	return models.User{
		ID:        d.ID.Hex(),
		Email:     d.Email,
		Name:      d.Name,
		Photo:     d.Photo,
		Role:      d.Role,
		Badge:     d.Badge,
		CreatedAt: d.CreatedAt,
	}
}

type postDoc struct {
	ID          bson.ObjectID `bson:"_id"`
	AuthorName  string        `bson:"authorName"`
	AuthorEmail string        `bson:"authorEmail"`
	AuthorImage string        `bson:"authorImage,omitempty"`
	Title       string        `bson:"title"`
	Description string        `bson:"description"`
	Tags        []string      `bson:"tags"`
	UpVote      int64         `bson:"upVote"`
	DownVote    int64         `bson:"downVote"`
	CreatedAt   time.Time     `bson:"createdAt"`
}

func (d postDoc) model() models.Post {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.Post{
		ID:          d.ID.Hex(),
		AuthorName:  d.AuthorName,
		AuthorEmail: d.AuthorEmail,
		AuthorImage: d.AuthorImage,
		Title:       d.Title,
		Description: d.Description,
		Tags:        tags,
		UpVote:      d.UpVote,
		DownVote:    d.DownVote,
		CreatedAt:   d.CreatedAt,
	}
}

type commentDoc struct {
	ID          bson.ObjectID `bson:"_id"`
	PostID      string        `bson:"postId"`
	Title       string        `bson:"title"`
	Body        string        `bson:"body"`
	AuthorEmail string        `bson:"authorEmail"`
	CreatedAt   time.Time     `bson:"createdAt"`
}

func (d commentDoc) model() models.Comment {
	return models.Comment{
		ID:          d.ID.Hex(),
		PostID:      d.PostID,
		Title:       d.Title,
		Body:        d.Body,
		AuthorEmail: d.AuthorEmail,
		CreatedAt:   d.CreatedAt,
	}
}

type tagDoc struct {
	ID   bson.ObjectID `bson:"_id"`
	Name string        `bson:"name"`
}

type announcementDoc struct {
	ID          bson.ObjectID `bson:"_id"`
	AuthorName  string        `bson:"authorName,omitempty"`
	AuthorImage string        `bson:"authorImage,omitempty"`
	Title       string        `bson:"title,omitempty"`
	Content     string        `bson:"content"`
	CreatedAt   time.Time     `bson:"createdAt"`
}

func (d announcementDoc) model() models.Announcement {
	return models.Announcement{
		ID:          d.ID.Hex(),
		AuthorName:  d.AuthorName,
		AuthorImage: d.AuthorImage,
		Title:       d.Title,
		Content:     d.Content,
		CreatedAt:   d.CreatedAt,
	}
}

// objectID parses a model id, or generates one when id is empty.
func objectID(id string) (bson.ObjectID, error) {
	if id == "" {
		return bson.NewObjectID(), nil
	}
	return bson.ObjectIDFromHex(id)
}

func insertResult(res *mongo.InsertOneResult) models.InsertResult {
	out := models.InsertResult{Acknowledged: res.Acknowledged}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		out.InsertedID = oid.Hex()
	}
	return out
}

func updateResult(res *mongo.UpdateResult) models.UpdateResult {
	out := models.UpdateResult{
		Acknowledged:  res.Acknowledged,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if oid, ok := res.UpsertedID.(bson.ObjectID); ok {
		hex := oid.Hex()
		out.UpsertedID = &hex
	}
	return out
}

// nowMillis truncates to the millisecond precision BSON dates store.
func nowMillis() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
