package client

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
)

const configfile = ".gudang"

// A Config holds client's configuration.
type Config struct {
	Endpoint string `json:"endpoint"`
}

// Remove removes the config file from the current directory.
func Remove() error {
	return os.Remove(configfile)
}

// Load gets the configuration from the current folder according to `configfile` const.
func Load() (Config, error) {
	var cfg Config

	payload, err := os.ReadFile(configfile)
	if err != nil {
		return cfg, errors.Wrap(err, "could not read config file")
	}

	err = json.Unmarshal(payload, &cfg)
	return cfg, errors.Wrap(err, "could not parse config")
}

// Save stores the configuration in the current folder according to `configfile` const.
func Save(cfg Config) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "could not serialize config")
	}

	fmt.Println("Storing configuration in current directory as " + configfile)

	err = os.WriteFile(configfile, payload, 0600)
	return errors.Wrap(err, "could not store config")
}

// Configure prompts for the Gudang endpoint and stores it.
func Configure() error {
	cfg := Config{}

	endpoint, err := readline.Line("Endpoint: ")
	if err != nil {
		return errors.Wrap(err, "could not read endpoint from stdin")
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return errors.Wrap(err, "invalid endpoint")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("invalid endpoint: %s", endpoint)
	}
	cfg.Endpoint = endpoint

	return Save(cfg)
}
