package http

import (
	"html/template"
	"strconv"
	"unicode"
	"unicode/utf8"
)

var funcs = template.FuncMap{
	// rating mirrors the places table: a missing or zero rating shows N/A.
	"rating": func(r *float64) string {
		if r == nil || *r == 0 {
			return "N/A"
		}
		return strconv.FormatFloat(*r, 'f', -1, 64)
	},
	// sentence upper-cases the first letter of an error message for display.
	"sentence": func(s string) string {
		r, n := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError {
			return s
		}
		return string(unicode.ToUpper(r)) + s[n:]
	},
}

const layout = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{if eq .View.Status "loading"}}<meta http-equiv="refresh" content="1">{{end}}
</head>
<body>
<main class="flex flex-col items-center justify-center min-h-screen bg-gray-100">
<h1 class="text-4xl font-bold mb-8">{{.Title}}</h1>
{{template "content" .}}
<footer class="mt-8">
<a href="https://github.com/JamesDiStef" target="_blank" rel="noopener noreferrer">Visit My GitHub</a>
</footer>
</main>
</body>
</html>{{end}}

{{define "nav"}}<div class="flex justify-between w-96 mt-4">
<form method="post" action="{{.Base}}/prev"><button class="btn btn-primary">Previous</button></form>
{{block "learn-more" .}}{{end}}
<form method="post" action="{{.Base}}/next"><button class="btn btn-primary">Next</button></form>
</div>{{end}}

{{define "status"}}{{if eq .View.Status "loading"}}<p>Loading...</p>
{{else if eq .View.Status "failed"}}<p>Error: {{sentence .View.Error}}</p>
<form method="post" action="{{.Base}}/remount"><button class="btn">Reload</button></form>
{{end}}{{end}}

{{define "pager"}}<p>Page {{.View.State.Page}} of {{.View.State.TotalPages}}{{if not .View.CanPaginate}} (paging disabled){{end}}</p>{{end}}
`

const postsContent = `{{define "learn-more"}}<a href="{{.View.Item.Link}}" target="_blank" rel="noopener noreferrer" class="btn btn-secondary">Learn More</a>{{end}}
{{define "content"}}<div class="carousel w-96 h-96 bg-white shadow-lg rounded-lg overflow-hidden">
<img src="{{.View.Item.ImageRef}}" alt="{{.View.Item.Name}}" class="w-full h-full object-cover">
</div>
{{template "nav" .}}
{{template "status" .}}
{{if eq .View.Status "ready"}}<table class="table-auto border-collapse border border-gray-400">
<thead><tr><th>ID</th><th>Title</th><th>Body</th></tr></thead>
<tbody>
{{range .View.Records}}<tr><td>{{.ID}}</td><td>{{.Title}}</td><td>{{.Body}}</td></tr>
{{end}}</tbody>
</table>
{{template "pager" .}}{{end}}{{end}}`

const placesContent = `{{define "content"}}{{template "status" .}}
{{if eq .View.Status "ready"}}<table class="table-auto border-collapse border border-gray-400">
<thead><tr><th>Name</th><th>Address</th><th>Rating</th></tr></thead>
<tbody>
{{range .View.Records}}<tr><td>{{.Name}}</td><td>{{.Address}}</td><td>{{rating .Rating}}</td></tr>
{{end}}</tbody>
</table>
{{template "nav" .}}
{{template "pager" .}}{{end}}{{end}}`

var (
	postsPage  = template.Must(template.New("posts").Funcs(funcs).Parse(layout + postsContent))
	placesPage = template.Must(template.New("places").Funcs(funcs).Parse(layout + placesContent))
)
