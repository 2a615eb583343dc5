// Package main provides admin management utilities for SocialPod.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"socialpod/internal/bootstrap"
	"socialpod/internal/config"
	"socialpod/internal/models"
	"socialpod/internal/service"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/admin promote <email>     - Promote user to admin")
		fmt.Println("  go run ./cmd/admin list-admins         - List all admins")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	rt, err := bootstrap.InitRuntime(ctx, cfg, bootstrap.Options{SkipBootstrapAdmin: true})
	if err != nil {
		log.Fatalf("Failed to connect to store: %v", err)
	}
	defer rt.Close(ctx)

	users := service.NewUserService(rt.Store.Users)

	switch command := os.Args[1]; command {
	case "promote":
		if len(os.Args) < 3 {
			fmt.Println("Usage: go run ./cmd/admin promote <email>")
			os.Exit(1)
		}
		promoteToAdmin(ctx, users, os.Args[2])

	case "list-admins":
		listAdmins(ctx, users)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func promoteToAdmin(ctx context.Context, users *service.UserService, email string) {
	user, err := users.GetByEmail(ctx, email)
	if err != nil {
		log.Fatalf("Store error: %v", err)
	}
	if user == nil {
		fmt.Printf("User %s not found\n", email)
		os.Exit(1)
	}
	if user.IsAdmin() {
		fmt.Printf("User %s (ID: %s) is already an admin\n", user.Email, user.ID)
		return
	}

	if _, err := users.PromoteByEmail(ctx, email); err != nil {
		log.Fatalf("Failed to promote user: %v", err)
	}
	fmt.Printf("✅ Successfully promoted %s (ID: %s) to admin\n", user.Email, user.ID)
}

func listAdmins(ctx context.Context, users *service.UserService) {
	admins, err := users.ListAdmins(ctx)
	if err != nil {
		log.Fatalf("Failed to fetch admins: %v", err)
	}

	if len(admins) == 0 {
		fmt.Println("No admins found in the system")
		return
	}

	fmt.Printf("Admins (%d):\n", len(admins))
	for _, a := range admins {
		fmt.Printf("  %s  %-30s %s  badge=%s\n", a.ID, a.Email, a.Name, badgeOrNone(a))
	}
}

func badgeOrNone(u models.User) string {
	if u.Badge == "" {
		return models.BadgeNone
	}
	return u.Badge
}
