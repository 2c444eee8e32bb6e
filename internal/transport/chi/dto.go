package chi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/altadigital/driveseek/internal/domain/file"
	"github.com/altadigital/driveseek/internal/domain/search/result"
)

type errorCode string

const (
	codeBadRequest       errorCode = "bad_request"
	codeValidationFailed errorCode = "validation_failed"
	codeUnauthorized     errorCode = "unauthorized"
	codeNotFound         errorCode = "not_found"
	codeUpstreamError    errorCode = "upstream_error"
	codeInternalError    errorCode = "internal_error"
)

type errorResponseDTO struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// searchRequestDTO mirrors the POST /api/v1/search body. Pointer fields
// distinguish "absent, use the default" from an explicit zero.
type searchRequestDTO struct {
	Goal            string   `json:"goal"`
	Client          string   `json:"client"`
	Types           []string `json:"types"`
	FolderWhitelist []string `json:"folderWhitelist"`
	WindowDays      *int     `json:"windowDays"`
	PageSize        *int     `json:"pageSize"`
	MaxPasses       *int     `json:"maxPasses"`
}

type passDTO struct {
	Pass  int    `json:"pass"`
	Query string `json:"q"`
	Hits  int    `json:"hits"`
	Error string `json:"error,omitempty"`
}

type ownerDTO struct {
	DisplayName  string `json:"displayName,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
}

type fileDTO struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	MimeType     string     `json:"mimeType,omitempty"`
	ModifiedTime string     `json:"modifiedTime,omitempty"`
	CreatedTime  string     `json:"createdTime,omitempty"`
	Parents      []string   `json:"parents,omitempty"`
	Owners       []ownerDTO `json:"owners,omitempty"`
	WebViewLink  string     `json:"webViewLink,omitempty"`
}

type scoredFileDTO struct {
	fileDTO
	Score int      `json:"score"`
	Why   []string `json:"why"`
}

type searchResponseDTO struct {
	Passes []passDTO       `json:"passes"`
	Files  []scoredFileDTO `json:"files"`
}

type listResponseDTO struct {
	Files []fileDTO `json:"files"`
}

func fileToDTO(r *file.Record) fileDTO {
	owners := make([]ownerDTO, 0, len(r.Owners()))
	for _, o := range r.Owners() {
		owners = append(owners, ownerDTO{
			DisplayName:  o.DisplayName,
			EmailAddress: o.EmailAddress,
		})
	}

	return fileDTO{
		ID:           r.ID(),
		Name:         r.Name(),
		MimeType:     r.MimeType(),
		ModifiedTime: formatTime(r.ModifiedTime()),
		CreatedTime:  formatTime(r.CreatedTime()),
		Parents:      r.Parents(),
		Owners:       owners,
		WebViewLink:  r.WebViewLink(),
	}
}

func reportToDTO(report *result.Report) searchResponseDTO {
	passes := make([]passDTO, len(report.Passes()))
	for i, p := range report.Passes() {
		dto := passDTO{Pass: p.Index(), Query: p.Query(), Hits: p.Hits()}
		if p.Err() != nil {
			dto.Error = p.Err().Error()
		}
		passes[i] = dto
	}

	files := make([]scoredFileDTO, len(report.Files()))
	for i, sf := range report.Files() {
		why := sf.Reasons()
		if why == nil {
			why = []string{}
		}
		files[i] = scoredFileDTO{
			fileDTO: fileToDTO(sf.File()),
			Score:   sf.Score(),
			Why:     why,
		}
	}

	return searchResponseDTO{Passes: passes, Files: files}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponseDTO{
		Code:    code,
		Message: message,
	})
}
