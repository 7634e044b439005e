package main

import (
	"bitbucket.org/sotavant/eagle-energy-skill/internal/config"
	"flag"
	"github.com/ilyakaznacheev/cleanenv"
	"os"
)

var flagRunAddr string
var flagLogLevel string
var flagConfigPath string

func parseFlags() {
	flag.StringVar(&flagRunAddr, "a", ":8080", "address and port")
	flag.StringVar(&flagLogLevel, "l", "debug", "log level")
	flag.StringVar(&flagConfigPath, "c", "", "config file (yaml, toml, json or env)")

	header := "Skill settings are read from the config file and the environment:"
	flag.Usage = cleanenv.FUsage(flag.CommandLine.Output(), &config.Config{}, &header, flag.Usage)
	flag.Parse()

	if envRunAddr := os.Getenv("RUN_ADDR"); envRunAddr != "" {
		flagRunAddr = envRunAddr
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		flagLogLevel = envLogLevel
	}

	if envConfigPath := os.Getenv("CONFIG_PATH"); envConfigPath != "" {
		flagConfigPath = envConfigPath
	}
}
