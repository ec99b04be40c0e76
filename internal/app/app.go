package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"GazetteWatch/internal/config"
	"GazetteWatch/internal/infrastructure/download"
	"GazetteWatch/internal/infrastructure/mail"
	"GazetteWatch/internal/infrastructure/parser"
	"GazetteWatch/internal/infrastructure/pdftext"
	"GazetteWatch/internal/infrastructure/secrets"
	"GazetteWatch/internal/infrastructure/storage"
	"GazetteWatch/internal/logging"
	"GazetteWatch/internal/ports"
	"GazetteWatch/internal/scanner"
	"GazetteWatch/internal/usecase"
)

const smtpPasswordKey = "smtp_password"

// Application wires configuration to adapters and the run pipeline.
type Application struct {
	cfg     config.Config
	logger  *slog.Logger
	source  ports.ListingSource
	store   ports.SeenStore
	secrets ports.SecretProvider
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	registry := scanner.NewRegistry()
	client := &http.Client{Timeout: cfg.HTTP.Timeout()}
	registry.Register(parser.NewGazetteScanner(client, cfg.HTTP.UserAgent))

	source := parser.NewStrategySource(registry, cfg.Sites, baseLogger.With("component", "source"))
	store := storage.NewFileStore(cfg.State.Path)

	var provider ports.SecretProvider
	switch cfg.Email.SecretSource {
	case "env":
		provider = secrets.NewEnvProvider("")
	default:
		provider = secrets.NewKeyringProvider(cfg.Email.KeyringService)
	}

	return &Application{
		cfg:     cfg,
		logger:  baseLogger,
		source:  source,
		store:   store,
		secrets: provider,
	}
}

// Run performs a single pipeline execution. The SMTP password is resolved up
// front when email is enabled, so a missing credential fails the run before
// any network work and a later transport failure can never roll the store
// back.
func (a *Application) Run(ctx context.Context) error {
	var notifier ports.Notifier
	if a.cfg.Email.Enabled {
		password, err := a.secrets.GetSecret(smtpPasswordKey)
		if err != nil {
			return fmt.Errorf("resolve smtp credential: %w", err)
		}
		notifier = mail.NewNotifier(a.cfg.Email, password, a.logger.With("component", "mail"))
	} else {
		a.logger.Info("email sending disabled, matches will only be logged")
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:     a.source,
		Store:      a.store,
		Downloader: download.NewHTTPDownloader(nil, a.cfg.HTTP.UserAgent),
		Extractor:  pdftext.NewExtractor(a.logger.With("component", "pdftext")),
		Notifier:   notifier,
		Keywords:   a.cfg.Keywords,
		Logger:     a.logger.With("component", "pipeline"),
	})

	return pipeline.Run(ctx)
}
