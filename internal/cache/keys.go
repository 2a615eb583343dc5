package cache

import (
	"context"
	"strings"
	"time"
)

const (
	PostKeyPrefix    = "post:"
	PostCountKey     = "posts:count"
	TagsKey          = "tags:all"
	AnnouncementsKey = "announcements:all"
)

const (
	PostTTL         = 30 * time.Minute
	CountTTL        = time.Minute
	TagsTTL         = 10 * time.Minute
	AnnouncementTTL = 5 * time.Minute
)

func PostKey(postID string) string {
	return PostKeyPrefix + postID
}

// keyFamily is the metric label for key: its prefix up to the first colon.
func keyFamily(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}

func (c *Cache) InvalidatePost(ctx context.Context, postID string) {
	c.Invalidate(ctx, PostKey(postID), PostCountKey)
}

func (c *Cache) InvalidateTags(ctx context.Context) {
	c.Invalidate(ctx, TagsKey)
}

func (c *Cache) InvalidateAnnouncements(ctx context.Context) {
	c.Invalidate(ctx, AnnouncementsKey)
}
