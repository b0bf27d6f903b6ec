package cmd

import (
	"fmt"
	"io"

	calendaradapter "github.com/bnema/scdc-smart-cli/internal/adapters/render/calendar"
	tomlrepo "github.com/bnema/scdc-smart-cli/internal/adapters/repo/toml"
	"github.com/bnema/scdc-smart-cli/internal/application"
	"github.com/bnema/scdc-smart-cli/internal/config"
	"github.com/bnema/scdc-smart-cli/internal/domain"
	"github.com/bnema/scdc-smart-cli/internal/logging"
	"github.com/bnema/scdc-smart-cli/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	calendar         *application.CalendarService
	bulletin         *application.BulletinService
	calendarRenderer func(application.CalendarView, calendaradapter.RenderOptions) (string, error)
	legendRenderer   func([]domain.SessionTypeInfo, calendaradapter.RenderOptions) (string, error)
}

// stderrWriter resolves the command's error stream on every write, so output
// redirected after wiring (SetErr in tests) still receives log lines.
type stderrWriter struct {
	cmd *cobra.Command
}

func (w stderrWriter) Write(p []byte) (int, error) {
	return w.cmd.ErrOrStderr().Write(p)
}

func wireApp(logOutput io.Writer) (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	store, err := tomlrepo.NewStore(v)
	if err != nil {
		return nil, fmt.Errorf("wire store: %w", err)
	}

	logger := logging.New(logging.Config{
		Level:     cfg.LogLevel,
		Output:    logOutput,
		Component: "calendar",
	})

	ids := ports.UUIDGenerator{}
	aggregator := application.NewAggregator(domain.DefaultLegend())

	return &app{
		calendar: application.NewCalendarService(tomlrepo.NewSessionRepository(store), aggregator, ids, logger),
		bulletin: application.NewBulletinService(
			tomlrepo.NewAnnouncementRepository(store),
			tomlrepo.NewVideoRepository(store),
			tomlrepo.NewRegistrationRepository(store),
			ports.SystemClock{},
			ids,
		),
		calendarRenderer: calendaradapter.Render,
		legendRenderer:   calendaradapter.RenderLegend,
	}, nil
}
