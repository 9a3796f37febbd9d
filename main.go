package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/arypfer/Proty-Content-Calendar/app/config"
	"github.com/arypfer/Proty-Content-Calendar/service"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("proty version %s\n", cliVersion)
	case "serve":
		cfg := config.FromEnv()
		if len(os.Args) > 2 {
			cfg.Addr = os.Args[2]
		}
		if err := service.Run(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "serve: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: proty <command> [options]
Commands:
  help               Display this help message.
  version            Show version information.
  serve [addr]       Run the content calendar API (default :8080).

Environment:
  ADDR               Listen address, overridden by the serve argument.
  GEMINI_API_KEY     Enables AI caption suggestions.
  GENAI_MODEL        Suggestion model (default gemini-2.0-flash).
  SEED_FILE          JSON array of posts loaded at startup.
`
	fmt.Println(helpText)
}
