package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"github.com/guilherme-santos/maccal/file"
)

var cfg struct {
	ConfigFile string
	Database   string
	Format     string
	Verbose    bool
}

type command interface {
	Run(_ context.Context, w io.Writer, _ *file.Config, verbose bool, args []string) error
}

var commands = map[string]command{
	ListCommand.Name:      ListCommand,
	AttendeeCommand.Name:  AttendeeCommand,
	AttendeesCommand.Name: AttendeesCommand,
}

var descriptions = map[string]string{
	ListCommand.Name:      ListCommand.Description,
	AttendeeCommand.Name:  AttendeeCommand.Description,
	AttendeesCommand.Name: AttendeesCommand.Description,
}

func init() {
	flag.StringVar(&cfg.ConfigFile, "config", defaultConfigFile(), "configuration file")
	flag.StringVar(&cfg.Database, "db", "", "Calendar.app database (default from the configuration file)")
	flag.StringVar(&cfg.Format, "format", "", "output format: "+formats())
	flag.BoolVar(&cfg.Verbose, "v", false, "log what is being done")
}

func defaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "maccal", "config.yaml")
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "Usage of %s: [options] <command> [command options]\n", os.Args[0])
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	names := make([]string, 0, len(descriptions))
	for name := range descriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-10s %s\n", name, descriptions[name])
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt)
		<-ch
		cancel()
	}()

	cmd, ok := commands[flag.Arg(0)]
	if !ok {
		flag.Usage()
		os.Exit(2)
	}

	conf, err := file.Load(cfg.ConfigFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Unable to load configuration:", err)
		os.Exit(1)
	}
	if cfg.Database != "" {
		conf.Database = cfg.Database
	}
	if cfg.Format != "" {
		conf.Format = cfg.Format
	}

	err = cmd.Run(ctx, os.Stdout, conf, cfg.Verbose, flag.Args()[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}
}
