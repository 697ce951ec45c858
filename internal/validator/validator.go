package validator

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/highcard/internal/config"
	"github.com/arcanaland/highcard/internal/render"
)

// maxNameLength keeps player lines readable next to the cards
const maxNameLength = 20

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ConfigPath string
	Results    ValidationResults
}

func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return v.Results, fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	cfg := config.Default()
	meta, err := toml.DecodeFile(v.ConfigPath, cfg)
	if err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("error parsing config file: %v", err))
		return v.Results, nil
	}

	v.validateKeys(meta)
	v.validatePlayers(cfg)
	v.validateColor(cfg)

	return v.Results, nil
}

// validateKeys reports keys the game does not understand
func (v *Validator) validateKeys(meta toml.MetaData) {
	for _, key := range meta.Undecoded() {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("unknown key: %s", key.String()))
	}
}

func (v *Validator) validatePlayers(cfg *config.Config) {
	names := map[string]string{
		"player_one": cfg.PlayerOne,
		"player_two": cfg.PlayerTwo,
	}

	for _, key := range []string{"player_one", "player_two"} {
		name := names[key]
		if strings.TrimSpace(name) == "" {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s must not be empty", key))
			continue
		}
		if utf8.RuneCountInString(name) > maxNameLength {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s is longer than %d characters: %q", key, maxNameLength, name))
		}
	}

	if cfg.PlayerOne != "" && strings.EqualFold(cfg.PlayerOne, cfg.PlayerTwo) {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("player_one and player_two are both %q", cfg.PlayerOne))
	}
}

func (v *Validator) validateColor(cfg *config.Config) {
	if _, err := render.ParseMode(cfg.Color); err != nil {
		v.Results.Errors = append(v.Results.Errors, err.Error())
	}
}
