package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"savings/internal/calculator"
	"savings/internal/config"
	"savings/internal/sound"
	"savings/internal/trace"
	"savings/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// flags holds the parsed command line. Only flags that were set override
// the config file.
type flags struct {
	configPath   string
	variant      int
	soundPath    string
	muted        bool
	noSound      bool
	logFile      string
	otlpEndpoint string
	activity     bool
}

func parseFlags() (flags, map[string]bool) {
	var f flags

	flag.StringVar(&f.configPath, "config", config.DefaultPath, "path to the YAML config file")
	flag.IntVar(&f.variant, "variant", 1, "calculator variant: 1 (classic) or 2 (tracked, with mute and usage counts)")
	flag.StringVar(&f.soundPath, "sound", "", "WAV file to play on every balance change (default: built-in beep)")
	flag.BoolVar(&f.muted, "muted", false, "start muted (variant 2 only)")
	flag.BoolVar(&f.noSound, "no-sound", false, "never open the audio device")
	flag.StringVar(&f.logFile, "log", "", "log file (\"\" disables logging; default from config, else savings.log)")
	flag.StringVar(&f.otlpEndpoint, "otlp-endpoint", "", "export events as spans to this OTLP/HTTP endpoint (host:port)")
	flag.BoolVar(&f.activity, "activity", false, "show the activity log on start")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: savings [flags]\n\n")
		fmt.Fprintf(os.Stderr, "A terminal money savings calculator: the balance grows while the\n")
		fmt.Fprintf(os.Stderr, "timer runs and can be adjusted by hand.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return f, set
}

// applyFlags overrides cfg with every flag given on the command line.
func applyFlags(cfg *config.Config, f flags, set map[string]bool) {
	if set["variant"] {
		cfg.Variant = calculator.Variant(f.variant)
	}
	if set["sound"] {
		cfg.Sound.Path = f.soundPath
	}
	if set["muted"] {
		cfg.Sound.Muted = f.muted
	}
	if set["no-sound"] {
		cfg.SetSoundEnabled(!f.noSound)
	}
	if set["log"] {
		cfg.SetLogFile(f.logFile)
	}
	if set["otlp-endpoint"] {
		cfg.Trace.OTLPEndpoint = f.otlpEndpoint
	}
	if set["activity"] {
		cfg.ShowActivity = f.activity
	}
}

func newPlayer(cfg *config.Config) (sound.Player, func()) {
	if !cfg.SoundEnabled() {
		return sound.Nop{}, func() {}
	}
	p, err := sound.NewBeepPlayer(cfg.Sound.Path)
	if err != nil {
		log.Printf("sound: %v; using built-in tone", err)
	}
	return p, p.Close
}

func run(cfg *config.Config) error {
	if logPath := cfg.LogPath(); logPath != "" {
		f, err := tea.LogToFile(logPath, "savings")
		if err != nil {
			return fmt.Errorf("log file %q: %w", logPath, err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	log.Printf("config: variant=%s sound=%v muted=%v otlp=%q",
		cfg.Variant, cfg.SoundEnabled(), cfg.Sound.Muted, cfg.Trace.OTLPEndpoint)

	player, closePlayer := newPlayer(cfg)
	defer closePlayer()

	exporter, err := trace.NewOTLPExporter(context.Background(), cfg.Trace.OTLPEndpoint, cfg.Trace.ServiceName)
	if err != nil {
		return err
	}
	recorder := trace.NewRecorder(trace.DefaultCapacity, exporter)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := recorder.Close(ctx); err != nil {
			log.Printf("trace: shutdown: %v", err)
		}
	}()

	calc := calculator.New(cfg.Variant)
	calc.SetMuted(cfg.Sound.Muted)

	model := ui.NewAppModel(calc, player, recorder)
	model.ShowActivity = cfg.ShowActivity

	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func main() {
	f, set := parseFlags()

	cfg, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "savings: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, f, set)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "savings: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "savings: %v\n", err)
		os.Exit(1)
	}
}
