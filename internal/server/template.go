package server

import (
	"embed"
	"html/template"

	"github.com/pkg/errors"
)

const indexTemplateName = "index.html"

//go:embed templates/index.html
var templateFS embed.FS

func loadIndexTemplate() (*template.Template, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/"+indexTemplateName)
	if err != nil {
		return nil, errors.Wrap(err, "解析页面模板失败")
	}
	return tmpl, nil
}
