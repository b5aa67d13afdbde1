package main

import (
	"github.com/joho/godotenv"

	configpkg "github.com/minhyannv/findword/pkg/config"
)

// envFiles are loaded before the environment is read. Variables already set
// by the launcher take precedence over values in these files.
var envFiles = []string{".env"}

// loadCLIConfig loads .env files into the environment, then reads config.
func loadCLIConfig() (configpkg.Config, error) {
	_ = godotenv.Load(envFiles...)
	return configpkg.Load()
}
