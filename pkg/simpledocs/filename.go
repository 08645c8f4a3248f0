package simpledocs

import (
	"path/filepath"
	"regexp"
	"strings"
)

// AllowedExtensions is the fixed set of document extensions accepted by
// the filename policy, in display order.
var AllowedExtensions = []string{"md", "txt", "jpg", "jpeg", "png"}

var documentNamePattern = regexp.MustCompile(`^\w+\.(md|txt|jpg|jpeg|png)$`)

// Classify derives the ExtensionKind for a document name. Names whose
// extension is not in the allowed set classify as KindInvalid.
func Classify(name string) ExtensionKind {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	switch ext {
	case "md":
		return KindMarkdown
	case "txt":
		return KindText
	case "jpg", "jpeg":
		return KindJPEG
	case "png":
		return KindPNG
	default:
		return KindInvalid
	}
}

// IsValidDocumentName reports whether name may be used to create or
// upload a document: one or more word characters, a dot, and an allowed
// extension. The empty string is never valid.
func IsValidDocumentName(name string) bool {
	return documentNamePattern.MatchString(name)
}

// DuplicateName computes the name for a duplicate of name by inserting
// "(copy)" before the final extension: "test.txt" becomes
// "test(copy).txt". It does not check whether the result already
// exists; a second duplication of the same base collides.
func DuplicateName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "(copy)" + ext
}
