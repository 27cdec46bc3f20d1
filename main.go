package main

import (
	"fmt"
	"os"
	src "voice-api-smoke/internal/dig"

	"github.com/joho/godotenv"
)

// loadEnv reads .env without overriding the environment, then lets
// .env.local override both. Missing files are ignored.
func loadEnv() {
	if _, err := os.Stat("./.env"); err == nil {
		if err := godotenv.Load("./.env"); err != nil {
			panic(err)
		}
	}
	if _, err := os.Stat("./.env.local"); err != nil {
		return
	}
	if err := godotenv.Overload("./.env.local"); err != nil {
		panic(err)
	}
}

func main() {
	loadEnv()

	kernel := src.NewKernel()

	app := src.NewApp(kernel)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
