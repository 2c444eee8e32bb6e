// Package driveseek is the embedded SDK: the same retrieval pipeline the
// HTTP server exposes, wired for in-process use.
package driveseek

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/altadigital/driveseek/internal/domain/file"
	"github.com/altadigital/driveseek/internal/domain/search/request"
	"github.com/altadigital/driveseek/internal/domain/search/result"
	"github.com/altadigital/driveseek/internal/repository/driveindex"
	"github.com/altadigital/driveseek/internal/transport/gdrive"
	lookupuc "github.com/altadigital/driveseek/internal/usecase/lookup"
	searchuc "github.com/altadigital/driveseek/internal/usecase/search"
)

// SearchParams are the multi-pass search inputs. Zero PageSize and
// MaxPasses take the service defaults; WindowDays is literal, 0 disables
// the date window.
type SearchParams struct {
	Goal            string
	Client          string
	Types           []string
	FolderWhitelist []string
	WindowDays      int
	PageSize        int
	MaxPasses       int
}

// Client is the driveseek SDK entry point.
type Client struct {
	drive  *gdrive.Client
	search *searchuc.Service
	lookup *lookupuc.Service
}

// New creates a driveseek Client. The provided context is used for Drive
// client construction.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.credentialsJSON) == 0 && cfg.credentialsPath != "" {
		data, err := os.ReadFile(cfg.credentialsPath)
		if err != nil {
			return nil, fmt.Errorf("driveseek: read credentials %s: %w", cfg.credentialsPath, err)
		}
		cfg.credentialsJSON = data
	}
	if len(cfg.credentialsJSON) == 0 {
		return nil, errors.New("driveseek: credentials required (use WithCredentialsJSON or WithCredentialsFile)")
	}

	drive, err := gdrive.NewClient(ctx, gdrive.Config{
		CredentialsJSON: cfg.credentialsJSON,
		Logger:          cfg.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("driveseek: %w", err)
	}

	index := driveindex.New(drive)
	if cfg.maxPageFetches > 0 {
		index = index.WithMaxPageFetches(cfg.maxPageFetches)
	}

	search := searchuc.New(index)
	if cfg.passTimeout > 0 {
		search = search.WithPassTimeout(cfg.passTimeout)
	}

	return &Client{
		drive:  drive,
		search: search,
		lookup: lookupuc.New(index),
	}, nil
}

// Search runs the multi-pass retrieval and ranking pipeline.
func (c *Client) Search(ctx context.Context, p SearchParams) (*result.Report, error) {
	req, err := request.New(
		p.Goal, p.Client,
		p.Types, p.FolderWhitelist,
		p.WindowDays, p.PageSize, p.MaxPasses,
	)
	if err != nil {
		return nil, fmt.Errorf("driveseek: %w", err)
	}
	return c.search.Search(ctx, &req)
}

// Find runs a single name-substring lookup, optionally within one folder.
func (c *Client) Find(ctx context.Context, nameQuery, folderID string, pageSize int) ([]file.Record, error) {
	return c.lookup.Find(ctx, nameQuery, folderID, pageSize)
}

// Download streams the raw bytes of an uploaded file. The returned reader
// must be closed by the caller; the second value is the content type.
func (c *Client) Download(ctx context.Context, fileID string) (io.ReadCloser, string, error) {
	return c.drive.Download(ctx, fileID)
}

// Export streams a Drive-native document converted to mimeType.
func (c *Client) Export(ctx context.Context, fileID, mimeType string) (io.ReadCloser, error) {
	return c.drive.Export(ctx, fileID, mimeType)
}

// HealthCheck verifies Drive reachability with the configured credentials.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.drive.HealthCheck(ctx)
}
