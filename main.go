package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/mdsite/internal/commands"
	"github.com/gerunddev/mdsite/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "build":
		commands.Build(os.Args[2:])
	case "watch":
		commands.Watch(os.Args[2:])
	case "render":
		commands.Render(os.Args[2:])
	case "title":
		commands.Title(os.Args[2:])
	case "diff":
		commands.Diff(os.Args[2:])
	case "status":
		commands.Status()
	case "version", "--version":
		fmt.Printf("mdsite v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`mdsite - Static site generator for a strict Markdown subset

Usage:
  mdsite <command> [options]

Commands:
  build       Build the site (optional base path, --incremental, --verbose)
  watch       Rebuild changed pages on an interval (--interval 2s)
  render      Print the HTML fragment for a Markdown file
  title       Print the level-1 heading of a Markdown file
  diff        Show how rebuilding a page would change its output
  status      Show the last build and pending pages
  version     Show version information
  help        Show this help message

Examples:
  mdsite build
  mdsite build /my-repo/
  mdsite build --incremental --verbose
  mdsite watch --interval 500ms
  mdsite render content/index.md
  mdsite diff content/blog/first.md
  mdsite status

Configuration:
  Config file: %s
  State file:  %s
`, config.ConfigPath(), config.StateFilePath())
	fmt.Print(usage)
}
