package data

import (
	"bytes"
	"context"
	"io"
	"strings"

	"financial-health/internal/model"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// LoadPDF extracts the literal text shown on each page and keeps at most
// limit characters of it. No numeric extraction is attempted.
func LoadPDF(ctx context.Context, content []byte, limit int) (model.Document, error) {
	pdfCtx, err := api.ReadValidateAndOptimize(bytes.NewReader(content), pdfmodel.NewDefaultConfiguration())
	if err != nil {
		return model.Document{}, err
	}

	var sb strings.Builder
	for page := 1; page <= pdfCtx.PageCount; page++ {
		if err := ctx.Err(); err != nil {
			return model.Document{}, err
		}
		r, err := pdfcpu.ExtractPageContent(pdfCtx, page)
		if err != nil {
			return model.Document{}, err
		}
		if r == nil {
			continue
		}
		stream, err := io.ReadAll(r)
		if err != nil {
			return model.Document{}, err
		}
		text := contentText(stream)
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(text)
		if limit > 0 && sb.Len() >= limit*4 {
			break
		}
	}

	return model.Document{
		Kind:    model.DocumentRawText,
		RawText: truncateRunes(sb.String(), limit),
	}, nil
}

// contentText pulls the literal strings out of a page content stream,
// one space between show operations.
func contentText(stream []byte) string {
	var (
		out   strings.Builder
		cur   strings.Builder
		depth int
	)
	for i := 0; i < len(stream); i++ {
		c := stream[i]
		if depth == 0 {
			if c == '(' {
				depth = 1
				cur.Reset()
			}
			continue
		}
		switch c {
		case '\\':
			if i+1 < len(stream) {
				i++
				switch stream[i] {
				case 'n':
					cur.WriteByte('\n')
				case 't':
					cur.WriteByte('\t')
				case 'r', 'b', 'f':
				default:
					cur.WriteByte(stream[i])
				}
			}
		case '(':
			depth++
			cur.WriteByte(c)
		case ')':
			depth--
			if depth == 0 {
				if out.Len() > 0 {
					out.WriteByte(' ')
				}
				out.WriteString(cur.String())
				continue
			}
			cur.WriteByte(c)
		default:
			cur.WriteByte(c)
		}
	}
	return strings.TrimSpace(out.String())
}
