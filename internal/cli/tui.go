package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/toolstack/addressit/internal/scheduler"
	"github.com/toolstack/addressit/internal/update"
	"github.com/toolstack/addressit/internal/watch"
)

func runTUI(cmd *cobra.Command, v *viper.Viper) error {
	ctx := cmd.Context()
	env, err := openEnv(ctx, v)
	if err != nil {
		return err
	}
	defer env.Close()

	rc := update.RuntimeConfigFrom(update.DefaultRuntimeConfig(), env.cfg)
	due := scheduler.NewEngine(16)
	due.Start()
	defer due.Stop()
	model := update.NewModel(ctx, env.session, rc, env.logger).WithDueEngine(due)

	if env.cfg.WatchImports {
		w, err := watch.NewWatcher(env.cfg.ImportDir, env.logger)
		if err != nil {
			return fmt.Errorf("start import watcher: %w", err)
		}
		// A failed Start has already released the watcher.
		if err := w.Start(); err != nil {
			env.logger.Warn("import watcher not started", zap.String("dir", env.cfg.ImportDir), zap.Error(err))
		} else {
			defer w.Stop()
			model = model.WithImports(w.Files)
			env.logger.Info("watching import directory", zap.String("dir", env.cfg.ImportDir))
		}
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("addressit failed: %w", err)
	}
	return nil
}
