package supabase

import (
	"fmt"

	"github.com/supabase-community/supabase-go"
	"mockup-catalog-backend/internal/config"
)

type Client struct {
	Supabase *supabase.Client
	Config   *config.Config
}

func NewClient(cfg *config.Config) (*Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &Client{
		Supabase: client,
		Config:   cfg,
	}, nil
}

// Storage returns an object storage client for the configured bucket that
// shares the project client's credentials.
func (c *Client) Storage() *StorageClient {
	return &StorageClient{
		client:  c.Supabase.Storage,
		bucket:  c.Config.SupabaseStorageBucket,
		baseURL: trimSlash(c.Config.SupabaseURL),
	}
}
