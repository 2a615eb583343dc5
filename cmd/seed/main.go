// Command main fills the configured store with demo data.
package main

import (
	"context"
	"flag"
	"log"

	"socialpod/internal/bootstrap"
	"socialpod/internal/config"
	"socialpod/internal/seed"
)

func main() {
	opts := seed.DefaultOptions
	flag.IntVar(&opts.Users, "users", opts.Users, "Number of users to create")
	flag.IntVar(&opts.Posts, "posts", opts.Posts, "Number of posts to create")
	flag.IntVar(&opts.CommentsPerPost, "comments", opts.CommentsPerPost, "Comments per post")
	flag.IntVar(&opts.Tags, "tags", opts.Tags, "Number of tags to create")
	flag.IntVar(&opts.Announcements, "announcements", opts.Announcements, "Number of announcements to create")
	flag.IntVar(&opts.MaxVotesPerPost, "max-votes", opts.MaxVotesPerPost, "Upper bound of each vote counter per post")
	flag.StringVar(&opts.AdminEmail, "admin", "", "Also create this admin user")
	randomSeed := flag.Int64("seed", 0, "Random seed, 0 for a random one")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	rt, err := bootstrap.InitRuntime(ctx, cfg, bootstrap.Options{})
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer rt.Close(ctx)

	sum, err := seed.NewSeeder(rt.Store, *randomSeed).Run(ctx, opts)
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Printf("✅ Seeded %d users, %d posts, %d comments, %d tags, %d announcements (%d votes)",
		sum.Users, sum.Posts, sum.Comments, sum.Tags, sum.Announcements, sum.Votes)
}
