package simpledocs

import (
	"fmt"
	"strings"
)

// User-facing notices and validation messages. The strings are part of
// the external contract: handlers queue them on the session and the
// next rendered view displays them once.
const (
	NoticeWelcome        = "Welcome!"
	NoticeSignedOut      = "You have been signed out."
	NoticeSignInRequired = "You must be signed in to do that."
	NoticeAccountCreated = "Your account has been created. Welcome!"

	MsgInvalidCredentials = "Invalid credentials"
	MsgNameRequired       = "A name is required."
	MsgInvalidUsername    = "Username must be 3-20 characters (letters, numbers, & underscores only)"
	MsgUsernameTaken      = "That username is taken. Please choose a new one."
)

// MsgInvalidExtension is the validation message for names outside the
// allowed extension set.
var MsgInvalidExtension = fmt.Sprintf("Only %s files are accepted.", strings.Join(AllowedExtensions, ", "))

// NoticeNotFound is the notice for an operation targeting a document
// that does not exist.
func NoticeNotFound(name string) string {
	return fmt.Sprintf("%s does not exist.", name)
}

// NoticeCreated is the success notice for createDocument.
func NoticeCreated(name string) string {
	return fmt.Sprintf("%s was created.", name)
}

// NoticeUpdated is the success notice for updateDocument.
func NoticeUpdated(name string) string {
	return fmt.Sprintf("%s has been updated.", name)
}

// NoticeDeleted is the success notice for deleteDocument.
func NoticeDeleted(name string) string {
	return fmt.Sprintf("%s has been deleted.", name)
}

// NoticeDuplicated is the success notice for duplicateDocument.
func NoticeDuplicated(name string) string {
	return fmt.Sprintf("%s was duplicated.", name)
}

// NoticeUploaded is the success notice for uploadDocument.
func NoticeUploaded(name string) string {
	return fmt.Sprintf("%s was uploaded.", name)
}
