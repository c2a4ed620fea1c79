package connector

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/viant/afs"

	"github.com/PromptMixerDev/prompt-mixer-gemini-connector/pkg/models"
)

// Loader fetches reference bytes and packages them as inline attachments.
// Attachment loading is best effort: every failure is logged and swallowed so
// that a broken file mention in prose never fails the completion.
type Loader struct {
	httpClient *http.Client
	fs         afs.Service
}

// NewLoader returns a Loader backed by a shared HTTP client and the afs file
// service.
func NewLoader() *Loader {
	return &Loader{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		fs:         afs.New(),
	}
}

// Load resolves one normalized reference into an attachment part, or nil when
// the reference cannot be fetched.
func (l *Loader) Load(ctx context.Context, ref string) *models.MessagePart {
	part, err := l.load(ctx, ref)
	if err != nil {
		log.Printf("warn: skipping attachment %q: %v", ref, err)
		return nil
	}
	return part
}

func (l *Loader) load(ctx context.Context, ref string) (*models.MessagePart, error) {
	if isHTTPURL(ref) {
		return l.fetchRemote(ctx, ref)
	}
	path, err := resolvePath(ref)
	if err != nil {
		return nil, err
	}
	mediaType, ok := mediaTypeFor(extensionOf(path))
	if !ok {
		return nil, fmt.Errorf("unsupported extension in %q", path)
	}
	data, err := l.fs.DownloadWithURL(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return inlinePart(mediaType, data), nil
}

func (l *Loader) fetchRemote(ctx context.Context, ref string) (*models.MessagePart, error) {
	mediaType, ok := mediaTypeFor(extensionOf(ref))
	if !ok {
		return nil, fmt.Errorf("unsupported extension in %q", ref)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %q: status %s", ref, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	// The server's declared type wins over the extension-based guess.
	if declared := declaredMediaType(resp.Header.Get("Content-Type")); declared != "" && declared != mediaType {
		mediaType = declared
	}
	return inlinePart(mediaType, data), nil
}

// declaredMediaType extracts the MIME portion of a Content-Type header,
// dropping parameters such as charset.
func declaredMediaType(header string) string {
	if i := strings.IndexByte(header, ';'); i >= 0 {
		header = header[:i]
	}
	return strings.TrimSpace(header)
}

func inlinePart(mediaType string, data []byte) *models.MessagePart {
	return &models.MessagePart{InlineData: &models.InlineData{
		MimeType: mediaType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}}
}
