package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/ked/internal/clipboard"
	"github.com/dshills/ked/internal/config"
	"github.com/dshills/ked/internal/engine"
	"github.com/dshills/ked/internal/input/keymap"
	"github.com/dshills/ked/internal/plugin"
	"github.com/dshills/ked/internal/storage"
	"github.com/dshills/ked/internal/syntax"
	"github.com/dshills/ked/internal/term"
)

// Application wires the editor's components together and runs the
// event loop. New builds everything that can exist without a terminal;
// Run takes the screen.
type Application struct {
	// Core infrastructure
	cfg     config.Config
	cfgPath string
	logger  *Logger
	logFile *os.File
	session string

	// Editor components
	engine   *engine.Engine
	keymap   *keymap.Keymap
	screen   *term.Screen
	renderer *term.Renderer

	// Extensions
	host *plugin.Host

	// Live reload
	watcher *config.Watcher
	changes <-chan struct{}

	// State
	running atomic.Bool

	// Options
	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath overrides the default configuration file location.
	ConfigPath string

	// Path is the file to edit. Empty starts an unnamed buffer.
	Path string

	// LogLevel overrides the configured log verbosity when non-empty.
	LogLevel string

	// LogFile overrides the configured log destination when non-empty.
	LogFile string
}

// New creates an Application with the given options. Everything except
// the terminal is initialized here, so a startup failure still reaches
// stderr as a plain error.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		session: uuid.New().String(),
	}

	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Configuration. Everything below reads it, so it loads first.
	//    Load errors are non-fatal; the editor runs on defaults.
	app.cfgPath = app.opts.ConfigPath
	if app.cfgPath == "" {
		app.cfgPath = config.DefaultPath()
	}
	cfg, cfgErr := config.Load(app.cfgPath)
	app.cfg = cfg

	// 2. Logging. The editor owns the terminal once Run starts, so
	//    logs go to the configured file, or nowhere.
	app.initLogger()
	if cfgErr != nil {
		app.logger.WithComponent("config").Warn("using defaults: %v", cfgErr)
	}

	// 3. Syntax registry. Ruleset errors are non-fatal; highlighting
	//    falls back to the built-in languages.
	langs := syntax.NewRegistry()
	if err := langs.LoadDir(app.cfg.Syntax.LanguageDir); err != nil {
		app.logger.WithComponent("syntax").Warn("loading %s: %v", app.cfg.Syntax.LanguageDir, err)
	}

	// 4. Engine and keymap.
	app.engine = engine.New(
		engine.WithTabStop(app.cfg.Editor.TabStop),
		engine.WithQuitConfirm(app.cfg.Editor.QuitConfirm),
		engine.WithIndentAsSpaces(app.cfg.IndentAsSpaces()),
		engine.WithAutoIndent(app.cfg.Editor.AutoIndent),
		engine.WithClipboard(clipboard.New(app.cfg.Clipboard.Provider)),
		engine.WithPersistence(storage.FileStore{}),
		engine.WithRegistry(langs),
	)
	app.keymap = keymap.New()

	// 5. The initial file. A file that cannot be read is fatal, and it
	//    is reported before the terminal takes the screen.
	if app.opts.Path != "" {
		if err := app.engine.Open(app.opts.Path); err != nil {
			return &InitError{Component: "file", Err: err}
		}
	}

	// 6. Plugin host. Script errors are non-fatal; the session runs
	//    without the script's commands.
	app.host = plugin.NewHost(app.engine)
	initPath := filepath.Join(filepath.Dir(app.cfgPath), "init.lua")
	loaded, err := app.host.LoadInit(initPath)
	switch {
	case err != nil:
		app.logger.WithComponent("plugin").Warn("init script: %v", err)
	case loaded:
		app.engine.SetCommandHook(app.host.RunCommand)
		app.logger.WithComponent("plugin").Info("loaded %s, commands: %v", initPath, app.host.Commands())
	}

	// 7. Config watcher. Watch errors are non-fatal; the session just
	//    loses live reload.
	if app.cfgPath != "" {
		watcher, err := config.NewWatcher(app.cfgPath)
		if err == nil {
			app.changes, err = watcher.Start()
		}
		if err != nil {
			app.logger.WithComponent("config").Warn("watching %s: %v", app.cfgPath, err)
		} else {
			app.watcher = watcher
		}
	}

	return nil
}

// initLogger builds the application logger. Verbosity and destination
// come from the config unless the command line overrides them. With no
// destination the logger stays off; a destination that cannot be
// opened is reported on stderr and the logger stays off too.
func (app *Application) initLogger() {
	level := app.cfg.Logging.Level
	if app.opts.LogLevel != "" {
		level = app.opts.LogLevel
	}
	path := app.cfg.Logging.File
	if app.opts.LogFile != "" {
		path = app.opts.LogFile
	}

	if path == "" {
		app.logger = NullLogger
		return
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ked: log file: %v\n", err)
		app.logger = NullLogger
		return
	}
	app.logFile = f

	logger := NewLogger(LoggerConfig{
		Level:  ParseLogLevel(level),
		Output: f,
		Prefix: "ked",
	})
	app.logger = logger.WithField("session", app.session)
}

// Run takes the terminal and blocks in the event loop until the user
// quits or the terminal goes away. It returns ErrQuit on a normal
// quit.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	screen, err := term.Open()
	if err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	defer screen.Close()
	app.screen = screen
	app.renderer = term.NewRenderer(screen)

	app.engine.StatusInfof("HELP: Alt-s save, ` quit")
	app.logger.Info("editing %q", app.engine.Path())

	err = app.loop()
	app.logger.Info("stopped: %v", err)
	return err
}

// loop draws a frame, then waits for the next key or a config change.
// Resizes fall through to the redraw at the top.
func (app *Application) loop() error {
	for {
		app.renderer.Draw(app.engine.Snapshot())
		top, rows := app.renderer.Viewport()
		app.engine.SetViewport(top, rows)

		select {
		case ev, ok := <-app.screen.Events():
			if !ok {
				return nil
			}
			if ev.Kind != term.EventKey {
				continue
			}
			cmd, status := app.keymap.Translate(app.engine.Mode(), ev.Key)
			if status != "" {
				// Rejected keys bypass Apply so the quit countdown and
				// search highlight survive a stray keypress.
				app.engine.StatusErrorf("%s", status)
				continue
			}
			if cmd == nil {
				continue
			}
			if err := app.engine.Apply(cmd); err != nil {
				return err
			}
		case <-app.changes:
			app.reloadConfig()
		}
	}
}

// reloadConfig re-reads the config file and applies the refreshable
// settings. A file that fails to load keeps the current settings.
func (app *Application) reloadConfig() {
	cfg, err := config.Load(app.cfgPath)
	if err != nil {
		app.logger.WithComponent("config").Warn("reload: %v", err)
		app.engine.StatusErrorf("config reload failed")
		return
	}
	app.cfg = cfg
	app.applyConfig()
	app.logger.WithComponent("config").Info("reloaded %s", app.cfgPath)
	app.engine.StatusInfof("config reloaded")
}

// applyConfig pushes the refreshable settings into the running
// components. The clipboard provider and language directory are bound
// at startup and stay as they are.
func (app *Application) applyConfig() {
	app.engine.SetTabStop(app.cfg.Editor.TabStop)
	app.engine.SetQuitConfirm(app.cfg.Editor.QuitConfirm)
	app.engine.SetIndentAsSpaces(app.cfg.IndentAsSpaces())
	app.engine.SetAutoIndent(app.cfg.Editor.AutoIndent)
	app.logger.SetLevel(ParseLogLevel(app.cfg.Logging.Level))
}

// Close releases everything bootstrap acquired, in reverse order. The
// log file closes last so shutdown messages still land in it.
func (app *Application) Close() {
	if app.watcher != nil {
		if err := app.watcher.Stop(); err != nil {
			app.logger.WithComponent("config").Warn("stopping watcher: %v", err)
		}
		app.watcher = nil
	}
	if app.host != nil {
		app.host.Close()
		app.host = nil
	}
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
}

// Engine returns the editing engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Config returns the active configuration.
func (app *Application) Config() config.Config {
	return app.cfg
}

// Logger returns the application's logger instance.
func (app *Application) Logger() *Logger {
	return app.logger
}
