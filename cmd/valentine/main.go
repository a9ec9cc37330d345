package main

import (
	"fmt"
	"log"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/valentine/internal/audio"
	"github.com/jask/valentine/internal/config"
	"github.com/jask/valentine/internal/logging"
	"github.com/jask/valentine/internal/trail"
	"github.com/jask/valentine/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, logFile, err := logging.Setup(cfg.Log)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer logFile.Close()

	player := audio.NewPlayer(cfg.Audio.Path, cfg.Audio.Volume)
	defer func() {
		if err := player.Close(); err != nil {
			logger.Warn("close audio", "err", err)
		}
	}()
	// play is allowed to fail (no device, unreadable track); the toggle
	// state stays with the card either way
	music := audio.NewQueue(player, func(err error) {
		logger.Debug("audio play failed", slog.Any("err", err))
	})
	defer music.Close()

	sched := trail.NewTimerScheduler(nil)
	model := tui.New(tui.Deps{
		Config:    cfg,
		Music:     music,
		Scheduler: sched,
		Logger:    logger,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	sched.Bind(tui.Poster(p))

	logger.Info("card opened", "audio", cfg.Audio.Path != "", "fps", cfg.UI.FPS)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
