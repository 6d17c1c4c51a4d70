package main

import (
	"flag"
	"os"
	"runtime"
	"strings"

	"cannonland/internal/config"
	"cannonland/internal/logging"
	"cannonland/internal/sims/battlefield"

	log "github.com/sirupsen/logrus"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	var opts options
	flag.IntVar(&opts.runs, "runs", 8, "number of seeds to play")
	flag.IntVar(&opts.ticks, "ticks", 2000, "tick budget per run")
	flag.Int64Var(&opts.seedBase, "seed-base", 1, "seed of the first run; run i uses seed-base+i")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	flag.StringVar(&opts.snapshot, "snapshot", "", "write the final state of the first run to this gob file")
	configPath := flag.String("config", "", "optional config file (json, yaml or toml)")
	logLevel := flag.String("log-level", "", "log level (defaults to the config file or warn)")
	var overrides kvList
	flag.Var(&overrides, "set", "battlefield override in key=value form (repeatable)")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	level := *logLevel
	if level == "" {
		level = "warn"
		if *configPath != "" {
			level = settings.LogLevel
		}
	}
	if err := logging.Setup(level, os.Stderr); err != nil {
		log.Fatal(err)
	}

	values := settings.Battlefield
	for _, kv := range overrides {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			log.WithField("set", kv).Warn("ignoring override without '='")
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	opts.base = battlefield.FromMap(values)

	if err := run(opts, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
