package history

import (
	_ "embed"
	"html/template"
	"strings"
)

//go:embed history.html
var pageHTML string

var pageTemplate = template.Must(template.New("history").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(pageHTML))
