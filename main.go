package main

import (
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"slingshot/internal/answer"
	"slingshot/internal/config"
	"slingshot/internal/controller"
	"slingshot/internal/device"
	"slingshot/internal/sound"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	picker, err := answer.New(cfg.Answers, rng)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build answer picker")
	}

	var actx *audio.Context
	if cfg.Sound.Enabled {
		actx = audio.NewContext(sound.SampleRate)
	}
	cues := device.NewCues(actx, cfg.Sound.Volume)

	// 1. Window Setup
	ebiten.SetWindowSize(cfg.Screen.Width*cfg.Screen.Scale, cfg.Screen.Height*cfg.Screen.Scale)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 2. Initialize Game
	ctl := controller.New(controller.Options{
		Geometry: cfg.Geometry(),
		Timing:   cfg.RevealTiming(),
		Texts:    cfg.RevealTexts(),
		Clock:    clockwork.NewRealClock(),
		Source:   &device.EbitenSource{Width: cfg.Screen.Width, Height: cfg.Screen.Height},
		Keys:     device.EbitenKeys{},
		Picker:   picker,
		Cues:     cues,
	})
	game := NewGame(cfg.Screen.Width, cfg.Screen.Height, ctl)

	log.Info().
		Int("width", cfg.Screen.Width).
		Int("height", cfg.Screen.Height).
		Int("answers", picker.Len()).
		Bool("sound", cfg.Sound.Enabled).
		Msg("starting slingshot")

	// 3. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game loop exited")
	}
}
