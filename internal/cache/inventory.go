package cache

import (
	"context"
	"time"
)

// PostsListKey caches the public (anonymous) posts listing. Authenticated
// listings carry per-user like flags and are never cached.
const PostsListKey = "posts:list"

const (
	PostsListTTL = 30 * time.Second
)

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidatePostsList drops the cached public posts listing. Called on any
// write that changes the listing or its counts.
func InvalidatePostsList(ctx context.Context) {
	Invalidate(ctx, PostsListKey)
}
