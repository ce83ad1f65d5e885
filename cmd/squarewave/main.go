package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"
	"github.com/valerio/go-squarewave/squarewave"
	"github.com/valerio/go-squarewave/squarewave/backend"
	"github.com/valerio/go-squarewave/squarewave/backend/headless"
	"github.com/valerio/go-squarewave/squarewave/backend/terminal"
	"github.com/valerio/go-squarewave/squarewave/output"
	"github.com/valerio/go-squarewave/squarewave/sequencer"
	"github.com/valerio/go-squarewave/squarewave/song"
	"github.com/valerio/go-squarewave/squarewave/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "squarewave"
	app.Description = "A polyphonic square-wave synthesizer that plays built-in songs"
	app.Usage = "squarewave [options] [song]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "song",
			Usage: "Name of the built-in song to play (default: the first one)",
		},
		cli.BoolFlag{
			Name:  "list",
			Usage: "List the built-in songs and exit",
		},
		cli.BoolFlag{
			Name:  "ui",
			Usage: "Show the terminal voice monitor instead of logging progress",
		},
		cli.BoolFlag{
			Name:  "no-audio",
			Usage: "Render in real time without opening an audio device",
		},
		cli.StringFlag{
			Name:  "wav",
			Usage: "Record the output to a WAV file instead of playing it",
		},
		cli.BoolFlag{
			Name:  "loop",
			Usage: "Restart the song when it finishes",
		},
		cli.DurationFlag{
			Name:  "duration",
			Usage: "Stop after this much playback in headless mode (0 = until the song ends)",
		},
		cli.IntFlag{
			Name:  "voices",
			Usage: "Number of simultaneous voices",
			Value: squarewave.DefaultConfig().Audio.MaxVoices,
		},
		cli.IntFlag{
			Name:  "sample-rate",
			Usage: "Output sample rate in Hz",
			Value: squarewave.DefaultConfig().Audio.SampleRate,
		},
		cli.IntFlag{
			Name:  "amplitude",
			Usage: "Peak amplitude of a full-velocity note",
			Value: squarewave.DefaultConfig().Audio.MaxNoteAmplitude,
		},
		cli.IntFlag{
			Name:  "tpq",
			Usage: "Ticks per quarter note of the song data",
			Value: squarewave.DefaultConfig().Sequencer.TicksPerQuarterNote,
		},
		cli.DurationFlag{
			Name:  "poll-interval",
			Usage: "Event scheduler poll period (0 = busy poll)",
			Value: squarewave.DefaultConfig().PollInterval,
		},
		cli.DurationFlag{
			Name:  "buffer",
			Usage: "Audio buffer length",
			Value: 50 * time.Millisecond,
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Action = runSynthesizer

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running synthesizer", "error", err)
		os.Exit(1)
	}
}

func runSynthesizer(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("debug") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	catalog := song.Builtin()
	if c.Bool("list") {
		return listSongs(os.Stdout, catalog)
	}

	config := squarewave.DefaultConfig()
	config.Audio.SampleRate = c.Int("sample-rate")
	config.Audio.MaxVoices = c.Int("voices")
	config.Audio.MaxNoteAmplitude = c.Int("amplitude")
	config.Sequencer.TicksPerQuarterNote = c.Int("tpq")
	config.PollInterval = c.Duration("poll-interval")
	config.Loop = c.Bool("loop")

	synth, err := squarewave.New(config, catalog, timing.SystemClock{})
	if err != nil {
		return err
	}

	name := c.String("song")
	if name == "" && c.NArg() > 0 {
		name = c.Args().First()
	}
	if name != "" {
		err = synth.SelectByName(name)
	} else {
		err = synth.Select(0)
	}
	if err != nil {
		return err
	}

	out, err := openOutput(c, config.Audio.SampleRate)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil {
			slog.Error("Failed to close output", "error", err)
		}
	}()

	var be backend.Backend
	if c.Bool("ui") {
		be = terminal.New()
	} else {
		be = headless.New(c.Duration("duration"), headless.DefaultProgressInterval)
	}
	if err := be.Init(synth.BackendConfig(c.Bool("debug"))); err != nil {
		return err
	}
	defer func() {
		if err := be.Cleanup(); err != nil {
			slog.Error("Failed to clean up backend", "error", err)
		}
	}()

	// The terminal backend reads Ctrl-C as a key; headless runs need the
	// signal to stop.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return synth.Run(ctx, out, be)
}

type closingOutput interface {
	output.Output
	io.Closer
}

func openOutput(c *cli.Context, sampleRate int) (closingOutput, error) {
	bufferFrames := output.BlockFrames(sampleRate, c.Duration("buffer"))

	if path := c.String("wav"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create WAV file: %w", err)
		}
		slog.Info("Recording to WAV file", "path", path)
		pump := output.BlockFrames(sampleRate, timing.DefaultPumpInterval)
		return &wavFile{
			WAV:  output.NewWAV(f, sampleRate, timing.NewTickerLimiter(timing.DefaultPumpInterval), pump),
			file: f,
		}, nil
	}

	if c.Bool("no-audio") {
		slog.Info("Audio output disabled")
		pump := output.BlockFrames(sampleRate, timing.DefaultPumpInterval)
		return output.NewDiscard(timing.NewTickerLimiter(timing.DefaultPumpInterval), pump), nil
	}

	device, err := output.NewDevice(sampleRate, bufferFrames)
	if err != nil {
		return nil, errors.Join(err, errors.New("use --no-audio or --wav to run without a sound card"))
	}
	return device, nil
}

// wavFile closes the encoder before the file it writes to.
type wavFile struct {
	*output.WAV
	file *os.File
}

func (w *wavFile) Close() error {
	return errors.Join(w.WAV.Close(), w.file.Close())
}

func listSongs(w io.Writer, catalog *song.Catalog) error {
	for i, name := range catalog.Names() {
		sng := catalog.At(i)
		ticks, err := sng.TotalTicks()
		if err != nil {
			return err
		}
		millis := float64(ticks) * sequencer.MillisPerTick(sng.BPM, sequencer.DefaultTicksPerQuarterNote)
		length := time.Duration(millis * float64(time.Millisecond))
		if _, err := fmt.Fprintf(w, "%-10s %3.0f BPM  %4d events  %s\n", name, sng.BPM, sng.EventCount, length.Round(100*time.Millisecond)); err != nil {
			return err
		}
	}
	return nil
}
