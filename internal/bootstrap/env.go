// Package bootstrap performs process-level startup steps shared by the
// portal's entry points.
package bootstrap

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv loads a .env file from the working directory, if present, so the
// assistant API key can live next to the binary during development. Missing
// files are fine; the system environment is used as-is.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}
