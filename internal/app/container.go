package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/doeshing/voxsh/internal/application/assistant"
	"github.com/doeshing/voxsh/internal/application/command"
	configapp "github.com/doeshing/voxsh/internal/application/config"
	"github.com/doeshing/voxsh/internal/application/dispatch"
	"github.com/doeshing/voxsh/internal/application/doctor"
	"github.com/doeshing/voxsh/internal/application/mail"
	"github.com/doeshing/voxsh/internal/application/transcript"
	"github.com/doeshing/voxsh/internal/domain"
	"github.com/doeshing/voxsh/internal/infrastructure/ai"
	"github.com/doeshing/voxsh/internal/infrastructure/browser"
	"github.com/doeshing/voxsh/internal/infrastructure/config"
	"github.com/doeshing/voxsh/internal/infrastructure/executor"
	"github.com/doeshing/voxsh/internal/infrastructure/history"
	mailtransport "github.com/doeshing/voxsh/internal/infrastructure/mail"
	"github.com/doeshing/voxsh/internal/infrastructure/speech"
	"github.com/doeshing/voxsh/internal/pkg/logger"
	"github.com/doeshing/voxsh/internal/ports"
)

// Options controls how the container is assembled.
type Options struct {
	ConfigPath string
	Verbose    bool
	ForceText  bool
	In         io.Reader
	Out        io.Writer
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config        domain.Config
	ConfigLoader  *config.FileLoader
	Logger        *logger.ZapLogger
	SessionID     string
	Transcript    *transcript.Store
	Loop          *dispatch.Loop
	DoctorService *doctor.Service
	HistoryStore  ports.HistoryRepository
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := configapp.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgLoader.Path(), err)
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	log := logger.New(opts.Verbose)
	sessionID := uuid.NewString()
	store := transcript.NewStore()

	var historyStore ports.HistoryRepository
	if cfg.History.Enabled {
		historyStore = history.NewSQLiteStore(cfg.History.Path)
	}

	recognizer := speech.NewCommandRecognizer(cfg.Speech.Command, cfg.Speech.Args)
	input := speech.Select(cfg.Speech, opts.ForceText, recognizer, speech.NewTextFallbackCapture(opts.In, out), log)
	mailTransport := mailtransport.NewSendmailTransport(cfg.Mail.SendmailPath)
	opener := browser.NewOpener()

	commands := &command.Executor{
		Runner:     executor.NewLocalExecutor(cfg.Execution.Shell),
		Transcript: store,
		History:    historyStore,
		Logger:     log,
		Out:        out,
		SessionID:  sessionID,
	}

	loop := &dispatch.Loop{
		Input:    input,
		Commands: commands,
		Mail: &mail.Sender{
			Transport: mailTransport,
			Logger:    log,
			From:      cfg.Mail.From,
		},
		Assistant: &assistant.Service{
			Provider:   ai.NewProvider(cfg.Assistant),
			Transcript: store,
			Logger:     log,
			MaxTokens:  cfg.Assistant.MaxTokens,
		},
		Browser: opener,
		Logger:  log,
		Out:     out,
		Settings: dispatch.Settings{
			InstallCommand: cfg.Execution.InstallCommand,
			BrowserURL:     cfg.Browser.DefaultURL,
			EmailBody:      cfg.Mail.DefaultBody,
		},
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Recognizer:     recognizer,
		MailTransport:  mailTransport,
		Browser:        opener,
		History:        historyStore,
	}

	log.Debug("container ready", map[string]interface{}{
		"session": sessionID,
		"input":   input.Mode(),
		"config":  cfgLoader.Path(),
	})

	return &Container{
		Config:        cfg,
		ConfigLoader:  cfgLoader,
		Logger:        log,
		SessionID:     sessionID,
		Transcript:    store,
		Loop:          loop,
		DoctorService: doctorService,
		HistoryStore:  historyStore,
	}, nil
}
