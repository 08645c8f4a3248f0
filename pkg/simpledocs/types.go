package simpledocs

import "time"

// ExtensionKind classifies a document by its filename extension.
type ExtensionKind string

const (
	// KindMarkdown is a markdown document rendered to an HTML fragment.
	KindMarkdown ExtensionKind = "markdown"
	// KindText is a plain text document served verbatim.
	KindText ExtensionKind = "text"
	// KindJPEG is a JPEG image served verbatim.
	KindJPEG ExtensionKind = "jpeg"
	// KindPNG is a PNG image served verbatim.
	KindPNG ExtensionKind = "png"
	// KindInvalid marks a name whose extension is not in the allowed set.
	KindInvalid ExtensionKind = ""
)

// Document is a named, typed unit of stored content. Name is both the
// identity and the storage key; Kind is derived from the name.
type Document struct {
	Name    string
	Kind    ExtensionKind
	Content []byte
}

// Rendered is the servable representation of a document: the body to
// emit and its content type. For markdown documents Body is an HTML
// fragment, not a full page.
type Rendered struct {
	Body        []byte
	ContentType string
}

// ObjectMeta describes a stored object as reported by a BlobStore.
type ObjectMeta struct {
	Key         string
	Size        int64
	ContentType string
	UpdatedAt   time.Time
}

// Session is the per-request session state passed into every gated
// operation. The zero value is an anonymous session.
type Session struct {
	// Username is set only while signed in.
	Username string
	// Notice is a one-shot user-facing message queued for the next
	// rendered view and cleared after display.
	Notice string
}

// SignedIn reports whether the session belongs to an authenticated user.
func (s Session) SignedIn() bool {
	return s.Username != ""
}
