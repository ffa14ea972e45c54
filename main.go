package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"keytap/config"
	"keytap/journal"
	"keytap/keyboard"
	"keytap/keyboard_hook"
	"keytap/view"

	"github.com/alexflint/go-filemutex"

	"github.com/tidwall/buntdb"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	app := &cli.App{
		Name:  "keytap",
		Usage: "translate raw keyboard transitions into key events",
		Commands: []*cli.Command{
			watchCommand,
			recordCommand,
			statsCommand,
			resolveCommand,
		},
	}
	return app.Run(os.Args)
}

var watchCommand = &cli.Command{
	Name:  "watch",
	Usage: "print resolved key events as they happen",
	Action: func(c *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		h, err := keyboard_hook.NewHook(cfg.Backend(), logger)
		if err != nil {
			return err
		}
		dispatcher := keyboard_hook.NewDispatcher(newPrintListener(c.App.Writer))
		picker := keyboard_hook.NewPicker(h, keyboard.NewResolver(), dispatcher, logger, cfg.QueueSize())

		ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return picker.Register(ctx)
	},
}

var recordCommand = &cli.Command{
	Name:  "record",
	Usage: "count key events per day into the journal",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "print",
			Usage: "also print resolved key events",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		db, err := initDB()
		if err != nil {
			return err
		}
		defer db.Close()

		logger := newLogger(cfg)
		var no journal.Notificator = journal.NopNotificator{}
		if cfg.NotifyEnabled() {
			no = journal.NewNotificator()
		}
		repo := journal.NewTallyRepository(db)
		fm := newFileMutex()
		recorder := journal.NewRecorder(repo, logger, no, fm, cfg.DayStart(), cfg.FlushInterval())

		h, err := keyboard_hook.NewHook(cfg.Backend(), logger)
		if err != nil {
			return err
		}
		dispatcher := keyboard_hook.NewDispatcher(recorder)
		if c.Bool("print") {
			dispatcher.Add(newPrintListener(c.App.Writer))
		}
		picker := keyboard_hook.NewPicker(h, keyboard.NewResolver(), dispatcher, logger, cfg.QueueSize())

		ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		exit := make(chan error, 1)
		go func() {
			exit <- recorder.Run(ctx)
		}()

		err = picker.Register(ctx)
		cancel()
		if rerr := <-exit; rerr != nil && err == nil {
			err = rerr
		}
		return err
	},
}

var statsCommand = &cli.Command{
	Name:      "stats",
	Usage:     "show the recorded key counts of a month",
	ArgsUsage: "[YYYY-MM]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "day",
			Usage: "show the per-key counts of one day (YYYY-MM-DD)",
		},
	},
	Action: func(c *cli.Context) error {
		db, err := initDB()
		if err != nil {
			return err
		}
		defer db.Close()

		repo := journal.NewTallyRepository(db)
		v := view.NewTableViewer(view.NewViewRepository(repo), c.App.Writer)

		if day := c.String("day"); day != "" {
			date, err := journal.ParseDate(day)
			if err != nil {
				return fmt.Errorf("invalid day %q: %w", day, err)
			}
			return v.Day(date)
		}

		month := c.Args().First()
		if month == "" {
			month = time.Now().Format("2006-01")
		}
		return v.Do(month)
	},
}

var resolveCommand = &cli.Command{
	Name:      "resolve",
	Usage:     "resolve a sequence of transitions without a hook (ex: down:0xA0 tap:KEY_A up:0xA0)",
	ArgsUsage: "TOKEN...",
	Action: func(c *cli.Context) error {
		ts, err := parseTransitions(c.Args().Slice())
		if err != nil {
			return err
		}
		r := keyboard.NewResolver()
		for _, t := range ts {
			for _, e := range r.Translate(t) {
				fmt.Fprintln(c.App.Writer, e)
			}
		}
		return nil
	},
}

func newPrintListener(out io.Writer) keyboard_hook.Listener {
	printEvent := func(e keyboard.Event) { fmt.Fprintln(out, e) }
	return keyboard_hook.ListenerFuncs{
		Typed:    printEvent,
		Pressed:  printEvent,
		Released: printEvent,
	}
}

func initDB() (*buntdb.DB, error) {
	dir, err := config.DataDir()
	if err != nil {
		return nil, err
	}

	db, err := buntdb.Open(filepath.Join(dir, "keytap.db"))
	if err != nil {
		return nil, err
	}
	return db, nil
}

func newLogger(cfg config.Config) *slog.Logger {
	dir, err := config.DataDir()
	if err != nil {
		panic(err)
	}
	logFile, err := os.OpenFile(filepath.Join(dir, "log.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		panic(err)
	}

	return slog.New(
		slog.NewJSONHandler(logFile, &slog.HandlerOptions{
			Level: cfg.LogLevel(),
		}),
	)
}

func newFileMutex() *filemutex.FileMutex {
	dir, err := config.DataDir()
	if err != nil {
		panic(err)
	}

	mux, err := filemutex.New(filepath.Join(dir, "keytap.lock"))
	if err != nil {
		panic(err)
	}
	return mux
}
