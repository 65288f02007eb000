// Package config manages user-level settings stored at
// ~/.pwaforge/config.yaml. It provides functions to load, read, and
// write configuration keys such as the maximum accepted project name
// length and whether CLI output is colorized.
package config
