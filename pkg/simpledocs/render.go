package simpledocs

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdown is a shared CommonMark engine. Raw HTML passes through
// unmodified, matching how stored markdown documents are authored.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Render maps a classified document to its servable representation. For
// KindMarkdown the content is converted to an HTML fragment; all other
// recognized kinds pass the bytes through under their content type.
// Rendering a KindInvalid document is a caller bug: the filename policy
// gates such names upstream.
func Render(kind ExtensionKind, content []byte) (*Rendered, error) {
	switch kind {
	case KindMarkdown:
		var buf bytes.Buffer
		if err := markdown.Convert(content, &buf); err != nil {
			return nil, fmt.Errorf("render markdown: %w", err)
		}
		return &Rendered{Body: buf.Bytes(), ContentType: "text/html; charset=utf-8"}, nil
	case KindText:
		return &Rendered{Body: content, ContentType: "text/plain; charset=utf-8"}, nil
	case KindJPEG:
		return &Rendered{Body: content, ContentType: "image/jpeg"}, nil
	case KindPNG:
		return &Rendered{Body: content, ContentType: "image/png"}, nil
	default:
		return nil, fmt.Errorf("no renderer for extension kind %q", kind)
	}
}
