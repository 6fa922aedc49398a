package resumes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
	"resume-builder/resume/render"
)

const maxExportBytes = 20 << 20 // 20MB

// Export is a rendered document ready to download.
type Export struct {
	Format      render.Format
	ContentType string
	FileName    string
	Body        []byte
	Cached      bool
}

// Exporter renders resumes and caches the bytes in the object store.
// A nil Store disables caching.
type Exporter struct {
	Renderer render.Renderer
	Store    object.ObjectStore
	// MaxCacheBytes caps a cached object; larger ones are re-rendered. Zero means 20MB.
	MaxCacheBytes int64
}

// Export renders resume in rawFormat. The cache key covers the content and
// format, so edits to the stored content never serve a stale file.
func (e *Exporter) Export(ctx context.Context, resume Resume, rawFormat string) (Export, error) {
	format, err := render.ParseFormat(rawFormat)
	if err != nil {
		return Export{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if format == render.FormatPDF && e.Renderer.PDF == nil {
		return Export{}, ErrExportUnsupported
	}

	out := Export{
		Format:      format,
		ContentType: format.ContentType(),
		FileName:    render.FileName(resume.Content, format),
	}

	contentJSON, err := json.Marshal(resume.Content)
	if err != nil {
		return Export{}, fmt.Errorf("marshal content: %w", err)
	}
	key := ExportKey(resume.ID, contentJSON, format)

	if body, ok := e.readCache(ctx, key); ok {
		metrics.IncExportCache(true)
		out.Body = body
		out.Cached = true
		return out, nil
	}
	metrics.IncExportCache(false)

	body, err := e.Renderer.Render(ctx, resume.Content, format)
	if err != nil {
		if errors.Is(err, render.ErrPDFDisabled) {
			return Export{}, ErrExportUnsupported
		}
		return Export{}, err
	}
	out.Body = body

	if e.Store != nil {
		if _, err := e.Store.Put(ctx, key, out.ContentType, bytes.NewReader(body)); err != nil {
			telemetry.Warn("export.cache_write_failed", map[string]any{
				"resume_id": resume.ID,
				"format":    string(format),
				"error":     err.Error(),
			})
		}
	}
	return out, nil
}

func (e *Exporter) readCache(ctx context.Context, key string) ([]byte, bool) {
	if e.Store == nil {
		return nil, false
	}
	rc, err := e.Store.Open(ctx, key)
	if err != nil {
		if !errors.Is(err, object.ErrNotExist) {
			telemetry.Warn("export.cache_read_failed", map[string]any{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil, false
	}
	defer rc.Close()

	limit := e.MaxCacheBytes
	if limit <= 0 {
		limit = maxExportBytes
	}
	body, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil || len(body) == 0 {
		return nil, false
	}
	if int64(len(body)) > limit {
		telemetry.Warn("export.cache_oversized", map[string]any{
			"key":       key,
			"max_bytes": limit,
		})
		return nil, false
	}
	return body, true
}

// ExportKey is exports/<resumeID>/<sha256(content+format)>.<ext>.
func ExportKey(resumeID string, contentJSON []byte, format render.Format) string {
	sum := util.ContentHash(contentJSON, []byte(format))
	return "exports/" + resumeID + "/" + sum + "." + format.Ext()
}
