package main

import (
	"github.com/joho/godotenv"

	webtoolscmd "github.com/initializ/webtools/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	// Load .env if present so TAVILY_API_KEY can live next to the
	// project instead of the shell profile.
	_ = godotenv.Load()

	webtoolscmd.SetVersionInfo(version, commit)
	webtoolscmd.Execute()
}
