package templates

import (
	"bytes"
	htmltemplate "html/template"
	"statica/entity"
	"strings"
	texttemplate "text/template"
)

type skeletonData struct {
	Company       entity.Company
	Name          string
	Heading       string
	Tagline       string
	Accent        string
	Paragraphs    []string
	Items         []string
	CustomMessage string
	Action        string
	ActionURL     string
	Closing       string
}

const htmlSource = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
.container { max-width: 600px; margin: 0 auto; padding: 20px; }
.header { color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
.content { padding: 30px; background: #f9f9f9; }
.footer { padding: 20px; text-align: center; font-size: 12px; color: #666; }
.btn { display: inline-block; padding: 12px 24px; color: white; text-decoration: none; border-radius: 5px; margin: 10px 0; }
</style>
</head>
<body>
<div class="container">
<div class="header" style="background: {{.Accent | css}};">
<h1>{{.Heading}}</h1>
{{- if .Tagline}}
<p>{{.Tagline}}</p>
{{- end}}
</div>
<div class="content">
<h2>Hello {{.Name}},</h2>
{{- if .CustomMessage}}
<p>{{.CustomMessage}}</p>
{{- else}}
{{- range .Paragraphs}}
<p>{{.}}</p>
{{- end}}
{{- if .Items}}
<ul>
{{- range .Items}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
{{- end}}
{{- if .Action}}
<a href="{{.ActionURL}}" class="btn" style="background: {{.Accent | css}};">{{.Action}}</a>
{{- end}}
{{- if .Closing}}
<p>{{.Closing}}</p>
{{- end}}
</div>
<div class="footer">
<p>{{.Company.Name}} | {{.Company.Address}}</p>
<p>Email: {{.Company.SupportEmail}} | Web: {{.Company.Website}}</p>
</div>
</div>
</body>
</html>
`

const textSource = `{{.Heading}}

Hello {{.Name}},
{{if .CustomMessage}}
{{.CustomMessage}}
{{else}}{{range .Paragraphs}}
{{.}}
{{end}}{{range .Items}}- {{.}}
{{end}}{{end}}{{if .Action}}
{{.Action}}: {{.ActionURL}}
{{end}}{{if .Closing}}
{{.Closing}}
{{end}}
Contact us: {{.Company.SupportEmail}}

Best regards,
The {{.Company.Name}} Team
`

var (
	htmlSkeleton = htmltemplate.Must(htmltemplate.New("html").
			Funcs(htmltemplate.FuncMap{"css": func(s string) htmltemplate.CSS { return htmltemplate.CSS(s) }}).
			Parse(htmlSource))
	textSkeleton = texttemplate.Must(texttemplate.New("text").Parse(textSource))
)

// renderHTML falls back to the escaped custom message if the skeleton fails to execute.
func renderHTML(data skeletonData) string {
	var buf bytes.Buffer
	if err := htmlSkeleton.Execute(&buf, data); err != nil {
		return "<p>" + htmltemplate.HTMLEscapeString(fallbackText(data)) + "</p>"
	}
	return buf.String()
}

func renderText(data skeletonData) string {
	var buf bytes.Buffer
	if err := textSkeleton.Execute(&buf, data); err != nil {
		return fallbackText(data)
	}
	return buf.String()
}

func fallbackText(data skeletonData) string {
	if data.CustomMessage != "" {
		return data.CustomMessage
	}
	return strings.Join(data.Paragraphs, "\n")
}
