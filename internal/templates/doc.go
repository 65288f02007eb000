// Package templates holds the embedded file payloads for the generated
// PWA game framework and renders them with per-project values (project
// name, display title, cache name, app version). Payloads live under
// files/ as .tmpl files mirroring their output paths.
package templates
