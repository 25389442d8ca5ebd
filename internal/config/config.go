// Package config loads the settings of the goban tools.
package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"

	"github.com/dodgebc/goban/weiqi"
)

var (
	cfgFile = "goban/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

// ReplayConfig holds the defaults of the goreplay command.
type ReplayConfig struct {
	BoardSize int    `json:"board_size"`
	Workers   int    `json:"workers"`
	Out       string `json:"out"`
	Strict    bool   `json:"strict"`
}

type Config struct {
	Replay ReplayConfig `json:"replay"`
}

// InitConfig starts from DefaultConfig and applies the user's config file
// if one is found in the XDG config directories.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig
		return &config, nil
	}
	return Load(absPath)
}

// Load reads a config file on top of DefaultConfig and validates it.
func Load(filePath string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(filePath, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Replay.BoardSize < 1 || c.Replay.BoardSize > weiqi.MaxSize {
		return &InvalidConfig{fmt.Sprintf("board_size must be between 1 and %d, got %d", weiqi.MaxSize, c.Replay.BoardSize)}
	}
	if c.Replay.Workers < 1 {
		return &InvalidConfig{"workers must be at least 1"}
	}
	if c.Replay.Out == "" {
		return &InvalidConfig{"out must not be empty"}
	}
	return nil
}

// Save writes the config to the user's XDG config directory and returns
// the path written.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filePath, err)}
	}
	return nil
}
