// Package simpledocs implements a minimal file-backed document manager:
// named documents (markdown, plain text, or images) stored through a
// pluggable byte-level storage backend, rendered by type, and guarded by
// a session-based authorization gate backed by a credential store.
//
// The package is transport-free. HTTP handlers live in
// pkg/simpledocs/api and invoke this package through the Service,
// CredentialService and Authenticator types. Storage backends live in
// pkg/simpledocs/storage and credential repositories in
// pkg/simpledocs/credrepo.
package simpledocs
