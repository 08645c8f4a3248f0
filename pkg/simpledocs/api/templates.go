package api

import (
	"fmt"
	"html/template"
	"io"
)

// The UI is deliberately thin presentation glue around the core: a
// single layout plus one content block per page. Styling is left to
// deployments.
const layoutTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Simple Docs</title>
</head>
<body>
  {{if .Notice}}<p class="notice">{{.Notice}}</p>{{end}}
  {{if .Message}}<p class="message">{{.Message}}</p>{{end}}
  <header>
    {{if .Username}}
      <p>Signed in as {{.Username}}.</p>
      <form action="/users/signout" method="post"><button type="submit">Sign Out</button></form>
    {{else}}
      <p><a href="/users/signin">Sign In</a> or <a href="/users/signup">Sign Up</a></p>
    {{end}}
  </header>
  {{template "content" .}}
</body>
</html>`

var contentTemplates = map[string]string{
	"index": `{{define "content"}}
  <ul>
  {{range .Documents}}
    <li><a href="/{{.}}">{{.}}</a>
      <a href="/{{.}}/edit">edit</a>
      <form action="/{{.}}/delete" method="post" class="inline"><button type="submit">delete</button></form>
      <form action="/clone" method="post" class="inline">
        <input type="hidden" name="filename" value="{{.}}">
        <button type="submit">duplicate</button>
      </form>
    </li>
  {{end}}
  </ul>
  <p><a href="/new">New Document</a> | <a href="/upload">Upload Document</a></p>
{{end}}`,

	"view": `{{define "content"}}
  <article>{{.Body}}</article>
{{end}}`,

	"new": `{{define "content"}}
  <p>Add a new document:</p>
  <form action="/create" method="post">
    <input name="filename" type="text" autofocus>
    <button type="submit">Create</button>
  </form>
{{end}}`,

	"edit": `{{define "content"}}
  <p>Edit content of {{.Name}}:</p>
  <form action="/{{.Name}}" method="post">
    <textarea name="content" rows="20" cols="80">{{.Content}}</textarea>
    <button type="submit">Save Changes</button>
  </form>
{{end}}`,

	"upload": `{{define "content"}}
  <p>Upload a document:</p>
  <form action="/upload" method="post" enctype="multipart/form-data">
    <input name="file" type="file">
    <button type="submit">Upload</button>
  </form>
{{end}}`,

	"signin": `{{define "content"}}
  <form action="/users/signin" method="post">
    <label>Username: <input name="username" type="text" value="{{.Name}}"></label>
    <label>Password: <input name="password" type="password"></label>
    <button type="submit">Sign In</button>
  </form>
{{end}}`,

	"signup": `{{define "content"}}
  <p>Create a new username and password:</p>
  <form action="/users/signup" method="post">
    <label>Username: <input name="username" type="text" value="{{.Name}}"></label>
    <label>Password: <input name="password" type="password"></label>
    <button type="submit">Sign Up</button>
  </form>
{{end}}`,
}

// pages holds one compiled template set per UI page, each sharing the
// layout and providing its own "content" block.
var pages = buildPages()

func buildPages() map[string]*template.Template {
	out := make(map[string]*template.Template, len(contentTemplates))
	for name, content := range contentTemplates {
		tmpl := template.Must(template.New(name).Parse(layoutTemplate))
		template.Must(tmpl.Parse(content))
		out[name] = tmpl
	}
	return out
}

// pageData is everything the layout and content blocks can reference.
type pageData struct {
	Username  string
	Notice    string
	Message   string
	Documents []string
	Name      string
	Content   string
	Body      template.HTML
}

func renderPage(w io.Writer, page string, data pageData) error {
	tmpl, ok := pages[page]
	if !ok {
		return fmt.Errorf("unknown page template %q", page)
	}
	return tmpl.Execute(w, data)
}
