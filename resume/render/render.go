package render

import (
	"context"
	"strings"

	"resume-builder/internal/shared/util"
	"resume-builder/resume/model"
)

// Renderer dispatches an export format to its renderer. PDF is nil unless
// headless Chrome is configured.
type Renderer struct {
	PDF PDFRenderer
}

// Render produces the document bytes for format.
func (r Renderer) Render(ctx context.Context, content model.ResumeContent, format Format) ([]byte, error) {
	switch format {
	case FormatDoc:
		return Word(content)
	case FormatHTML:
		return PrintHTML(content)
	case FormatPDF:
		if r.PDF == nil {
			return nil, ErrPDFDisabled
		}
		html, err := PrintHTML(content)
		if err != nil {
			return nil, err
		}
		return r.PDF.RenderPDF(ctx, html)
	default:
		return nil, ErrUnknownFormat
	}
}

// FileName is the attachment name: the candidate name with underscores plus "_Resume".
func FileName(content model.ResumeContent, format Format) string {
	base := strings.Join(strings.Fields(content.Personal.Name), "_")
	if base == "" {
		return util.DownloadName("Resume", format.Ext())
	}
	return util.DownloadName(base+"_Resume", format.Ext())
}
