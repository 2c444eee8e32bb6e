// Package gdrive adapts the Google Drive v3 API to the domain model.
//
// The client is constructed once at the composition root from explicit
// service-account credentials and injected where needed; nothing in here
// reads ambient process state.
package gdrive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/altadigital/driveseek/internal/domain"
	"github.com/altadigital/driveseek/internal/domain/file"
)

// listFields is the partial-response field mask for files.list.
const listFields = "files(id,name,mimeType,modifiedTime,createdTime,parents,owners,webViewLink),nextPageToken"

// Config holds Drive client construction settings.
type Config struct {
	// CredentialsJSON is the service-account key, read-scoped.
	CredentialsJSON []byte
	Logger          *zap.Logger
}

// Client is a read-scoped Drive v3 client.
type Client struct {
	svc    *drive.Service
	logger *zap.Logger
}

// NewClient creates a Drive client from service-account credentials.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if len(cfg.CredentialsJSON) == 0 {
		return nil, fmt.Errorf("gdrive: credentials are required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	svc, err := drive.NewService(ctx,
		option.WithCredentialsJSON(cfg.CredentialsJSON),
		option.WithScopes(drive.DriveReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("gdrive: create service: %w", err)
	}

	return &Client{svc: svc, logger: logger}, nil
}

// ListPage fetches one result page for the given query, searching across
// all drives the service account can see.
func (c *Client) ListPage(
	ctx context.Context, q string, pageSize int, pageToken, orderBy string,
) ([]file.Record, string, error) {
	call := c.svc.Files.List().
		Q(q).
		PageSize(int64(pageSize)).
		OrderBy(orderBy).
		Fields(googleapi.Field(listFields)).
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Corpora("allDrives").
		Spaces("drive").
		Context(ctx)

	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	list, err := call.Do()
	if err != nil {
		return nil, "", fmt.Errorf("%w: files.list: %v", domain.ErrUpstream, err)
	}

	records := make([]file.Record, 0, len(list.Files))
	for _, f := range list.Files {
		records = append(records, toRecord(f))
	}
	return records, list.NextPageToken, nil
}

// Download streams the raw bytes of an uploaded file (alt=media).
func (c *Client) Download(ctx context.Context, fileID string) (io.ReadCloser, string, error) {
	resp, err := c.svc.Files.Get(fileID).
		SupportsAllDrives(true).
		Context(ctx).
		Download()
	if err != nil {
		return nil, "", mapAPIError("files.get", err)
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}

// Export streams a Drive-native document converted to the given MIME type.
func (c *Client) Export(ctx context.Context, fileID, mimeType string) (io.ReadCloser, error) {
	resp, err := c.svc.Files.Export(fileID, mimeType).
		Context(ctx).
		Download()
	if err != nil {
		return nil, mapAPIError("files.export", err)
	}
	return resp.Body, nil
}

// HealthCheck verifies the Drive API is reachable with the configured
// credentials.
func (c *Client) HealthCheck(ctx context.Context) error {
	if _, err := c.svc.About.Get().Fields("user").Context(ctx).Do(); err != nil {
		return fmt.Errorf("%w: about.get: %v", domain.ErrUpstream, err)
	}
	return nil
}

func mapAPIError(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == 404 {
		return fmt.Errorf("%w: %s: %v", domain.ErrNotFound, op, err)
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrUpstream, op, err)
}

func toRecord(f *drive.File) file.Record {
	owners := make([]file.Owner, 0, len(f.Owners))
	for _, o := range f.Owners {
		owners = append(owners, file.Owner{
			DisplayName:  o.DisplayName,
			EmailAddress: o.EmailAddress,
		})
	}

	return file.New(
		f.Id, f.Name, f.MimeType,
		parseTime(f.ModifiedTime), parseTime(f.CreatedTime),
		f.Parents, owners, f.WebViewLink,
	)
}

// parseTime parses the RFC3339 timestamps Drive returns. A malformed or
// empty value yields the zero time rather than failing the whole page.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
