package templates

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed files
var content embed.FS

// Data holds all values available to the framework templates.
type Data struct {
	Name        string // canonical project name, e.g. "my-cool-game"
	DisplayName string // human-readable title, e.g. "My Cool Game"
	CacheName   string // service-worker cache prefix (canonical name)
	AppVersion  string // semver stamped into the manifest and HTML
	Year        int
}

// NewData derives template values from a canonical project name. The
// display name is derived from the canonical form rather than the raw
// input so generated markup never carries unsanitized text. appVersion
// must be valid semver.
func NewData(canonical, appVersion string) (*Data, error) {
	if _, err := semver.NewVersion(appVersion); err != nil {
		return nil, fmt.Errorf("invalid app version %q: %w", appVersion, err)
	}

	display := cases.Title(language.English).String(strings.ReplaceAll(canonical, "-", " "))

	return &Data{
		Name:        canonical,
		DisplayName: display,
		CacheName:   canonical,
		AppVersion:  appVersion,
		Year:        time.Now().Year(),
	}, nil
}

// Render renders the payload for the given output path (forward-slash
// relative, e.g. "js/core/GameLoop.js"). The backing template is the
// embedded file of the same path with a .tmpl suffix.
func Render(relPath string, data *Data) ([]byte, error) {
	tmplPath := path.Join("files", relPath+".tmpl")

	raw, err := content.ReadFile(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(path.Base(relPath)).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", tmplPath, err)
	}
	return buf.Bytes(), nil
}
