// Package config loads, validates, and watches the editor configuration.
//
// Configuration lives in a single TOML file, by default
// ~/.config/ked/ked.toml. A missing file is not an error: every setting
// has a default and the file only overrides what it names.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Indent values accepted by EditorConfig.Indent.
const (
	IndentSpaces = "spaces"
	IndentTabs   = "tabs"
)

// Clipboard providers accepted by ClipboardConfig.Provider.
const (
	ClipboardInternal = "internal"
	ClipboardSystem   = "system"
)

// EditorConfig holds core editing behavior.
type EditorConfig struct {
	// TabStop is the number of columns a tab character advances to.
	TabStop int `toml:"tab_stop"`

	// QuitConfirm is how many consecutive quit commands a buffer with
	// unsaved changes requires before the editor actually exits.
	QuitConfirm int `toml:"quit_confirm"`

	// Indent selects what the Tab key inserts: "spaces" pads to the
	// next tab stop, "tabs" inserts a literal tab byte.
	Indent string `toml:"indent"`

	// AutoIndent copies the previous row's leading whitespace onto
	// rows created by Enter or open-line.
	AutoIndent bool `toml:"autoindent"`
}

// ClipboardConfig selects the clipboard backend.
type ClipboardConfig struct {
	// Provider is "internal" for the in-process register or "system"
	// for the operating system clipboard.
	Provider string `toml:"provider"`
}

// SyntaxConfig holds highlighting settings.
type SyntaxConfig struct {
	// LanguageDir is a directory of YAML language definitions loaded
	// on top of the built-in rulesets. A missing directory is ignored.
	LanguageDir string `toml:"language_dir"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	// Level is the minimum severity written to the log: "debug",
	// "info", "warn", or "error".
	Level string `toml:"level"`

	// File is the log destination. Empty disables logging; the editor
	// owns the terminal, so logs never go to stderr while running.
	File string `toml:"file"`
}

// Config is the complete editor configuration.
type Config struct {
	Editor    EditorConfig    `toml:"editor"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Syntax    SyntaxConfig    `toml:"syntax"`
	Logging   LoggingConfig   `toml:"logging"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TabStop:     4,
			QuitConfirm: 2,
			Indent:      IndentSpaces,
			AutoIndent:  true,
		},
		Clipboard: ClipboardConfig{
			Provider: ClipboardInternal,
		},
		Syntax: SyntaxConfig{
			LanguageDir: DefaultLanguageDir(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the standard config file location,
// ~/.config/ked/ked.toml, or empty if the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ked", "ked.toml")
}

// DefaultLanguageDir returns the standard language definition
// directory, ~/.config/ked/languages, or empty if the home directory
// is unknown.
func DefaultLanguageDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ked", "languages")
}

// IndentAsSpaces reports whether the Tab key should emit spaces.
func (c *Config) IndentAsSpaces() bool {
	return c.Editor.Indent == IndentSpaces
}

// logLevels are the accepted logging.level values.
var logLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks every field and reports all rejected values at once.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Editor.TabStop < 1 {
		errs.Add("editor.tab_stop", fmt.Sprintf("must be at least 1, got %d", c.Editor.TabStop))
	}
	if c.Editor.QuitConfirm < 1 {
		errs.Add("editor.quit_confirm", fmt.Sprintf("must be at least 1, got %d", c.Editor.QuitConfirm))
	}
	switch c.Editor.Indent {
	case IndentSpaces, IndentTabs:
	default:
		errs.Add("editor.indent", fmt.Sprintf("must be %q or %q, got %q", IndentSpaces, IndentTabs, c.Editor.Indent))
	}
	switch c.Clipboard.Provider {
	case ClipboardInternal, ClipboardSystem:
	default:
		errs.Add("clipboard.provider", fmt.Sprintf("must be %q or %q, got %q", ClipboardInternal, ClipboardSystem, c.Clipboard.Provider))
	}
	if !logLevels[c.Logging.Level] {
		errs.Add("logging.level", fmt.Sprintf("must be debug, info, warn, or error, got %q", c.Logging.Level))
	}

	if len(errs.Errors) > 0 {
		return &errs
	}
	return nil
}

// ValidationError describes one rejected configuration value.
type ValidationError struct {
	// Path is the dotted key, such as "editor.tab_stop".
	Path string

	// Message describes what is wrong with the value.
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors collects every rejected value in one error.
type ValidationErrors struct {
	Errors []*ValidationError
}

// Add appends a rejection for the given dotted key.
func (e *ValidationErrors) Add(path, message string) {
	e.Errors = append(e.Errors, &ValidationError{Path: path, Message: message})
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d invalid settings:\n  - %s", len(e.Errors), strings.Join(msgs, "\n  - "))
}
