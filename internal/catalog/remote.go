package catalog

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// RemoteClient fetches a food dataset from a JSON endpoint, for deployments
// that maintain their catalog outside the binary.
type RemoteClient struct {
	httpClient *resty.Client
	url        string
}

// NewRemoteClient creates a client for the given catalog URL.
func NewRemoteClient(url string) *RemoteClient {
	c := resty.New().
		SetDebug(false).
		SetHeaders(map[string]string{
			"Accept":     "application/json",
			"User-Agent": "portionvision/1.0",
		})
	return &RemoteClient{httpClient: c, url: url}
}

// Fetch downloads the remote food dataset and returns it as a catalog.
func (c *RemoteClient) Fetch(ctx context.Context) (*Catalog, error) {
	var foods []FoodItem
	res, err := c.httpClient.NewRequest().
		SetContext(ctx).
		SetResult(&foods).
		Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("catalog endpoint returned %s", res.Status())
	}
	if len(foods) == 0 {
		return nil, fmt.Errorf("catalog endpoint returned no foods")
	}
	return New(foods), nil
}

// Load fetches the remote catalog, falling back to the builtin dataset on
// any failure. The error is returned so the caller can log it, but the
// returned catalog is always usable.
func Load(ctx context.Context, url string) (*Catalog, error) {
	if url == "" {
		return Builtin(), nil
	}
	c, err := NewRemoteClient(url).Fetch(ctx)
	if err != nil {
		return Builtin(), err
	}
	return c, nil
}
