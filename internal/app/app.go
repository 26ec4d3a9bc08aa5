package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/specialistvlad/pathcheck/internal/config"
	"github.com/spf13/afero"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	fs     afero.Fs
	loader *config.Loader
	runID  string
}

// Option customizes an App.
type Option func(*App)

// WithFs makes the App read rules and check paths on fs.
func WithFs(fs afero.Fs) Option {
	return func(a *App) { a.fs = fs }
}

// NewApp is the constructor for the main application. The report goes to
// outW and logs go to logW, through a logger of the App's own.
func NewApp(outW, logW io.Writer, appConfig *Config, opts ...Option) *App {
	a := &App{
		outW:   outW,
		config: appConfig,
		fs:     afero.NewOsFs(),
		runID:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.logger = newLogger(appConfig.LogLevel, appConfig.LogFormat, logW).With("run_id", a.runID)
	a.loader = config.NewLoader(a.fs)
	a.logger.Debug("Logger configured successfully.")

	return a
}

// RunID identifies the App's runs in its logs.
func (a *App) RunID() string { return a.runID }
