// Package seed creates demo data for development. It writes through the
// repository interfaces, so it works against every store backend.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"socialpod/internal/middleware"
	"socialpod/internal/models"
	"socialpod/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
)

// Options controls how much data Run creates.
type Options struct {
	Users           int
	Posts           int
	CommentsPerPost int
	Tags            int
	Announcements   int
	MaxVotesPerPost int
	MaxDays         int
	AdminEmail      string
}

// DefaultOptions is a small but varied data set.
var DefaultOptions = Options{
	Users:           20,
	Posts:           60,
	CommentsPerPost: 3,
	Tags:            8,
	Announcements:   3,
	MaxVotesPerPost: 5,
	MaxDays:         90,
}

// Summary counts what Run created.
type Summary struct {
	Users         int
	Posts         int
	Comments      int
	Tags          int
	Announcements int
	Votes         int
}

// Seeder writes fake documents into a Store.
type Seeder struct {
	store *repository.Store
	faker *gofakeit.Faker
	rng   *rand.Rand
}

// NewSeeder returns a Seeder for store. A zero seed picks a random one.
func NewSeeder(store *repository.Store, seed int64) *Seeder {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeder{
		store: store,
		faker: gofakeit.New(seed),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Run creates users, tags, posts with votes and comments, and announcements.
func (s *Seeder) Run(ctx context.Context, opts Options) (Summary, error) {
	var sum Summary

	users, err := s.users(ctx, opts)
	if err != nil {
		return sum, err
	}
	sum.Users = len(users)

	tags, err := s.tags(ctx, opts.Tags)
	if err != nil {
		return sum, err
	}
	sum.Tags = len(tags)

	for i := 0; i < opts.Posts && len(users) > 0; i++ {
		author := users[s.rng.Intn(len(users))]
		post := s.BuildPost(author, tags, opts.MaxDays)
		res, err := s.store.Posts.Create(ctx, post)
		if err != nil {
			return sum, fmt.Errorf("create post: %w", err)
		}
		sum.Posts++

		votes, err := s.vote(ctx, res.InsertedID, opts.MaxVotesPerPost)
		if err != nil {
			return sum, err
		}
		sum.Votes += votes

		for j := 0; j < opts.CommentsPerPost; j++ {
			commenter := users[s.rng.Intn(len(users))]
			if _, err := s.store.Comments.Create(ctx, &models.Comment{
				PostID:      res.InsertedID,
				Title:       post.Title,
				Body:        s.faker.Sentence(12),
				AuthorEmail: commenter.Email,
				CreatedAt:   post.CreatedAt.Add(time.Duration(j+1) * time.Hour),
			}); err != nil {
				return sum, fmt.Errorf("create comment: %w", err)
			}
			sum.Comments++
		}
	}

	for i := 0; i < opts.Announcements; i++ {
		if _, err := s.store.Announcements.Create(ctx, &models.Announcement{
			AuthorName: "SocialPod Team",
			Title:      s.faker.HipsterSentence(4),
			Content:    s.faker.Paragraph(1, 3, 12, " "),
			CreatedAt:  time.Now().UTC(),
		}); err != nil {
			return sum, fmt.Errorf("create announcement: %w", err)
		}
		sum.Announcements++
	}

	middleware.Logger.Info("seed complete",
		"users", sum.Users, "posts", sum.Posts, "comments", sum.Comments,
		"tags", sum.Tags, "announcements", sum.Announcements, "votes", sum.Votes)
	return sum, nil
}

// BuildUser constructs an unsaved user with a unique fake email.
func (s *Seeder) BuildUser() *models.User {
	person := s.faker.Person()
	return &models.User{
		Email: strings.ToLower(fmt.Sprintf("%s.%s.%d@example.com", person.FirstName, person.LastName, s.rng.Intn(1_000_000))),
		Name:  person.FirstName + " " + person.LastName,
		Photo: person.Image,
		Role:  models.RoleUser,
		Badge: models.BadgeNone,
	}
}

// BuildPost constructs an unsaved post by author, tagged from tags.
func (s *Seeder) BuildPost(author *models.User, tags []string, maxDays int) *models.Post {
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := s.rng.Intn(maxDays)
	minsBack := s.rng.Intn(24 * 60)

	var postTags []string
	if len(tags) > 0 {
		for _, i := range s.rng.Perm(len(tags))[:1+s.rng.Intn(min(3, len(tags)))] {
			postTags = append(postTags, tags[i])
		}
	}

	return &models.Post{
		AuthorName:  author.Name,
		AuthorEmail: author.Email,
		AuthorImage: author.Photo,
		Title:       s.faker.Sentence(5),
		Description: s.faker.Paragraph(1, 3, 15, " "),
		Tags:        postTags,
		CreatedAt: time.Now().UTC().
			Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(minsBack)*time.Minute),
	}
}

func (s *Seeder) users(ctx context.Context, opts Options) ([]*models.User, error) {
	users := make([]*models.User, 0, opts.Users+1)
	if opts.AdminEmail != "" {
		admin := &models.User{Email: opts.AdminEmail, Name: "Admin", Role: models.RoleAdmin, Badge: models.BadgeGold}
		if _, err := s.store.Users.Create(ctx, admin); err != nil && !errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("create admin: %w", err)
		}
		users = append(users, admin)
	}
	for i := 0; i < opts.Users; i++ {
		u := s.BuildUser()
		if _, err := s.store.Users.Create(ctx, u); err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				continue
			}
			return nil, fmt.Errorf("create user: %w", err)
		}
		users = append(users, u)
	}
	return users, nil
}

func (s *Seeder) tags(ctx context.Context, n int) ([]string, error) {
	seen := make(map[string]bool, n)
	names := make([]string, 0, n)
	for attempts := 0; len(names) < n && attempts < n*10; attempts++ {
		name := strings.ToLower(s.faker.HackerNoun())
		if seen[name] {
			continue
		}
		seen[name] = true
		if _, err := s.store.Tags.Create(ctx, &models.Tag{Name: name}); err != nil {
			return nil, fmt.Errorf("create tag: %w", err)
		}
		names = append(names, name)
	}
	return names, nil
}

func (s *Seeder) vote(ctx context.Context, postID string, maxVotes int) (int, error) {
	if maxVotes <= 0 {
		return 0, nil
	}
	total := 0
	for _, kind := range []models.VoteKind{models.VoteUp, models.VoteDown} {
		for n := s.rng.Intn(maxVotes + 1); n > 0; n-- {
			if _, err := s.store.Posts.IncrementVote(ctx, postID, kind); err != nil {
				return total, fmt.Errorf("vote: %w", err)
			}
			total++
		}
	}
	return total, nil
}
