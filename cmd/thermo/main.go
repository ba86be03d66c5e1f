package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/five82/thermo/internal/app"
	"github.com/five82/thermo/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("thermo", pflag.ContinueOnError)
	var (
		opts           app.Options
		pollSeconds    float64
		refreshSeconds float64
	)
	flags.StringVarP(&opts.LogFile, "logfile", "f", "", "telemetry log to read (default from config, else the Bigscreen Beyond driver log)")
	flags.IntVarP(&opts.Window.Hours, "lastHours", "H", 0, "show the last N hours")
	flags.IntVarP(&opts.Window.Minutes, "lastMinutes", "M", 0, "show the last N minutes (adds to --lastHours)")
	flags.IntVarP(&opts.Window.Seconds, "lastSeconds", "S", 0, "show the last N seconds (adds to --lastHours and --lastMinutes)")
	flags.StringVarP(&opts.Window.Start, "startTime", "s", "", `start of the window, "YYYY-MM-DD HH:MM:SS" or "HH:MM:SS"`)
	flags.StringVarP(&opts.Window.End, "endTime", "e", "", "end of the window; the chart is drawn once and not followed")
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default "+config.DefaultPath()+")")
	flags.Float64Var(&pollSeconds, "poll", 0, "seconds between checks for new lines (default from config, 1s)")
	flags.Float64Var(&refreshSeconds, "refresh", 0, "seconds between chart redraws (default from config, 5s)")
	flags.StringVar(&opts.PNGPath, "png", "", "write the selected window to this PNG file and exit")
	flags.BoolVar(&opts.Debug, "debug", false, "log debug detail to the diagnostics log")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "thermo: %v\n", err)
		return 2
	}

	opts.Poll = config.Seconds(pollSeconds)
	opts.Refresh = config.Seconds(refreshSeconds)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "thermo: %v\n", err)
		if app.IsConfigError(err) {
			fmt.Fprintln(os.Stderr, "run 'thermo --help' for usage")
		}
		return 1
	}
	return 0
}
