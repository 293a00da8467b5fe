package generate

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"cvg/common"
	"cvg/config"
	"cvg/content"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	Name       string
	Template   string
	Format     string
	Tier       string
	SourceFile string
	Date       string
}

func expandTemplate(c *content.Content, name config.TemplateFieldName, field string, format common.OutputFmt, templateName string, tier common.DensityTier) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		Name:       c.Doc.Candidate.Name,
		Template:   templateName,
		Format:     format.String(),
		Tier:       tier.String(),
		SourceFile: strings.TrimSuffix(filepath.Base(c.SrcName), filepath.Ext(c.SrcName)),
		Date:       time.Now().Format("2006-01-02"),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
