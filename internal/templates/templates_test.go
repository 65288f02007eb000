package templates

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewData(t *testing.T) {
	t.Run("derived fields", func(t *testing.T) {
		d, err := NewData("my-cool-game", "0.1.0")
		if err != nil {
			t.Fatalf("NewData() error: %v", err)
		}
		if d.Name != "my-cool-game" {
			t.Errorf("Name = %q, want %q", d.Name, "my-cool-game")
		}
		if d.DisplayName != "My Cool Game" {
			t.Errorf("DisplayName = %q, want %q", d.DisplayName, "My Cool Game")
		}
		if d.CacheName != "my-cool-game" {
			t.Errorf("CacheName = %q, want %q", d.CacheName, "my-cool-game")
		}
		if d.Year == 0 {
			t.Error("Year should not be zero")
		}
	})

	t.Run("invalid app version", func(t *testing.T) {
		if _, err := NewData("game", "not-a-version"); err == nil {
			t.Fatal("expected error for invalid semver")
		}
	})
}

func TestRenderManifest(t *testing.T) {
	d := newTestData(t, "test-game")

	out, err := Render("manifest.json", d)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(out, &m); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if m["name"] != "test-game" {
		t.Errorf("manifest name = %v, want %q", m["name"], "test-game")
	}
	if m["short_name"] != "test-game" {
		t.Errorf("manifest short_name = %v, want %q", m["short_name"], "test-game")
	}
	if m["display"] != "standalone" {
		t.Errorf("manifest display = %v, want standalone", m["display"])
	}
}

func TestRenderServiceWorker(t *testing.T) {
	d := newTestData(t, "test-game")

	out, err := Render("service-worker.js", d)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	sw := string(out)
	if !strings.Contains(sw, "'test-game-v' + CACHE_VERSION") {
		t.Errorf("service worker missing versioned cache name:\n%s", sw)
	}
	if !strings.Contains(sw, "caches.open(CACHE_NAME)") {
		t.Error("service worker missing cache open call")
	}
}

func TestRenderHTML(t *testing.T) {
	d := newTestData(t, "test-game")

	out, err := Render("index.html", d)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, "Content-Security-Policy") {
		t.Error("index.html missing CSP meta tag")
	}
	if !strings.Contains(html, "<title>Test Game</title>") {
		t.Error("index.html missing display-name title")
	}
	if !strings.Contains(html, `v<span style="color:var(--accent-color)">0.1.0</span>`) {
		t.Error("index.html missing app version display")
	}
}

func TestRenderStaticPayloads(t *testing.T) {
	d := newTestData(t, "test-game")

	// Every static payload should render non-empty without template errors.
	paths := []string{
		"css/main.css", "css/ui.css",
		"js/main.js",
		"js/core/GameLoop.js", "js/core/Renderer.js", "js/core/InputManager.js",
		"js/core/AudioManager.js", "js/core/AssetLoader.js",
		"js/state/Store.js", "js/state/SaveSystem.js", "js/state/Settings.js",
		"js/state/Scoreboard.js",
		"js/scenes/SceneManager.js", "js/scenes/MenuScene.js", "js/scenes/GameScene.js",
		"js/ui/UIManager.js", "js/ui/ErrorDisplay.js",
		"js/utils/MathUtils.js", "js/utils/DOMUtils.js", "js/utils/ErrorHandler.js",
		"README.md", "gitignore",
	}
	for _, p := range paths {
		out, err := Render(p, d)
		if err != nil {
			t.Errorf("Render(%q) error: %v", p, err)
			continue
		}
		if len(out) == 0 {
			t.Errorf("Render(%q) produced empty content", p)
		}
	}
}

func TestRenderUnknownPath(t *testing.T) {
	d := newTestData(t, "test-game")
	if _, err := Render("js/NoSuchFile.js", d); err == nil {
		t.Fatal("expected error for unknown template path")
	}
}

func newTestData(t *testing.T, name string) *Data {
	t.Helper()
	d, err := NewData(name, "0.1.0")
	if err != nil {
		t.Fatalf("NewData(%q) error: %v", name, err)
	}
	return d
}
