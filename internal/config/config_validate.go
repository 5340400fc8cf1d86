// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate checks that required configuration is present and valid.
// Struct-tag validation covers ranges and formats; the manual checks cover
// cross-field rules the tags cannot express.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return c.validateWiki()
}

// validateWiki enforces the bot-credential pairing rule: either both
// SECRET_BOT_USER and SECRET_BOT_PASS are set, or neither is.
func (c *Config) validateWiki() error {
	if (c.Wiki.BotUsername == "") != (c.Wiki.BotPassword == "") {
		return fmt.Errorf("bot credentials must be set together: SECRET_BOT_USER and SECRET_BOT_PASS")
	}
	return nil
}

// BotConfigured reports whether authenticated Cargo fetches are available.
func (c *Config) BotConfigured() bool {
	return c.Wiki.BotUsername != "" && c.Wiki.BotPassword != ""
}
