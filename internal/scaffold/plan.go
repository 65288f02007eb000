package scaffold

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/pwaforge-labs/pwaforge/internal/templates"
)

// File is a single entry of the generation manifest: a forward-slash
// relative path under the project root and its literal content.
// Essential files are the ones whose write failure fails the whole run.
type File struct {
	Path      string
	Content   []byte
	Essential bool
}

// Plan describes the full output tree for one project. Files is the
// ordered manifest; Aux holds best-effort artifacts written after the
// main pass (placeholder icon, ignore file); AssetDirs are the fixed
// empty directories created alongside the manifest parents.
type Plan struct {
	Files     []File
	Aux       []File
	AssetDirs []string
}

// planEntry pairs an output path with its criticality. The backing
// template shares the output path.
type planEntry struct {
	out       string
	essential bool
}

// Manifest order mirrors the generated tree top-down.
var planEntries = []planEntry{
	{"manifest.json", true},
	{"service-worker.js", true},
	{"index.html", true},
	{"README.md", false},
	{"css/main.css", false},
	{"css/ui.css", false},
	{"js/main.js", false},
	{"js/core/GameLoop.js", false},
	{"js/core/Renderer.js", false},
	{"js/core/InputManager.js", false},
	{"js/core/AudioManager.js", false},
	{"js/core/AssetLoader.js", false},
	{"js/state/Store.js", false},
	{"js/state/SaveSystem.js", false},
	{"js/state/Settings.js", false},
	{"js/state/Scoreboard.js", false},
	{"js/scenes/SceneManager.js", false},
	{"js/scenes/MenuScene.js", false},
	{"js/scenes/GameScene.js", false},
	{"js/ui/UIManager.js", false},
	{"js/ui/ErrorDisplay.js", false},
	{"js/utils/MathUtils.js", false},
	{"js/utils/DOMUtils.js", false},
	{"js/utils/ErrorHandler.js", false},
}

var assetDirs = []string{
	"assets/icons",
	"assets/audio",
	"assets/textures",
	"assets/models",
	"assets/shaders",
}

// NewPlan renders every framework payload for data and assembles the
// output manifest. All rendering happens here, before any filesystem
// I/O is attempted; a render failure aborts the whole plan.
func NewPlan(data *templates.Data) (*Plan, error) {
	p := &Plan{AssetDirs: assetDirs}

	seen := make(map[string]bool, len(planEntries))
	for _, e := range planEntries {
		if err := validatePath(e.out); err != nil {
			return nil, fmt.Errorf("manifest path %q: %w", e.out, err)
		}
		if seen[e.out] {
			return nil, fmt.Errorf("duplicate manifest path %q", e.out)
		}
		seen[e.out] = true

		content, err := templates.Render(e.out, data)
		if err != nil {
			return nil, err
		}
		p.Files = append(p.Files, File{Path: e.out, Content: content, Essential: e.essential})
	}

	ignore, err := templates.Render("gitignore", data)
	if err != nil {
		return nil, err
	}
	p.Aux = append(p.Aux,
		File{Path: "assets/icons/icon-192x192.png", Content: []byte{}},
		File{Path: ".gitignore", Content: ignore},
	)

	return p, nil
}

// Directories returns the sorted set of directories that must exist
// before any manifest file is written: the parents of every manifest
// and auxiliary entry, plus the fixed empty asset directories.
func (p *Plan) Directories() []string {
	set := make(map[string]bool)
	for _, f := range p.Files {
		if dir := path.Dir(f.Path); dir != "." {
			set[dir] = true
		}
	}
	for _, f := range p.Aux {
		if dir := path.Dir(f.Path); dir != "." {
			set[dir] = true
		}
	}
	for _, d := range p.AssetDirs {
		set[d] = true
	}

	dirs := make([]string, 0, len(set))
	for d := range set {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

// validatePath rejects manifest paths that could escape the project
// root or that use platform-specific separators.
func validatePath(p string) error {
	if p == "" {
		return fmt.Errorf("empty path")
	}
	if strings.HasPrefix(p, "/") {
		return fmt.Errorf("absolute path not allowed")
	}
	if strings.Contains(p, `\`) {
		return fmt.Errorf("backslash separator not allowed")
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return fmt.Errorf("path traversal not allowed")
		}
	}
	return nil
}
