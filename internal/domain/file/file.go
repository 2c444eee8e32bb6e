// Package file defines the Drive file record as seen by the search pipeline.
package file

import "time"

// GoogleAppsMimePrefix marks files native to the Drive editors (Docs/Slides/Sheets).
const GoogleAppsMimePrefix = "application/vnd.google-apps."

// Owner identifies a file owner.
type Owner struct {
	DisplayName  string
	EmailAddress string
}

// Record is an immutable Drive file as returned by files.list.
type Record struct {
	id           string
	name         string
	mimeType     string
	modifiedTime time.Time
	createdTime  time.Time
	parents      []string
	owners       []Owner
	webViewLink  string
}

// New creates a file record.
func New(
	id, name, mimeType string,
	modifiedTime, createdTime time.Time,
	parents []string, owners []Owner, webViewLink string,
) Record {
	return Record{
		id:           id,
		name:         name,
		mimeType:     mimeType,
		modifiedTime: modifiedTime,
		createdTime:  createdTime,
		parents:      parents,
		owners:       owners,
		webViewLink:  webViewLink,
	}
}

// ID returns the stable Drive file identifier.
func (r *Record) ID() string { return r.id }

// Name returns the file name.
func (r *Record) Name() string { return r.name }

// MimeType returns the file MIME type.
func (r *Record) MimeType() string { return r.mimeType }

// ModifiedTime returns the last modification time.
func (r *Record) ModifiedTime() time.Time { return r.modifiedTime }

// CreatedTime returns the creation time.
func (r *Record) CreatedTime() time.Time { return r.createdTime }

// Parents returns the containing folder ids.
func (r *Record) Parents() []string { return r.parents }

// Owners returns the file owners.
func (r *Record) Owners() []Owner { return r.owners }

// WebViewLink returns the browser link to the file.
func (r *Record) WebViewLink() string { return r.webViewLink }

// IsGoogleApps reports whether the file is native to the Drive editors.
func (r *Record) IsGoogleApps() bool {
	return len(r.mimeType) >= len(GoogleAppsMimePrefix) &&
		r.mimeType[:len(GoogleAppsMimePrefix)] == GoogleAppsMimePrefix
}
