package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gerunddev/mdsite/internal/diff"
	"github.com/gerunddev/mdsite/internal/markdown"
	"github.com/gerunddev/mdsite/internal/site"
	"github.com/gerunddev/mdsite/internal/styles"
)

// readSource reads the single Markdown file named in args
func readSource(command string, args []string) (string, string) {
	pos := positional(args)
	if len(pos) != 1 {
		fail(fmt.Sprintf("Usage: mdsite %s <file.md>", command), nil)
	}

	data, err := os.ReadFile(pos[0])
	if err != nil {
		fail("Error reading "+pos[0], err)
	}
	return pos[0], string(data)
}

// Render prints the HTML fragment for a Markdown file
func Render(args []string) {
	path, md := readSource("render", args)

	out, err := renderFragment(md)
	if err != nil {
		fail(path, err)
	}
	fmt.Println(out)
}

func renderFragment(md string) (string, error) {
	doc, err := markdown.ParseDocument(md)
	if err != nil {
		return "", err
	}
	return doc.HTML()
}

// Title prints the level-1 heading of a Markdown file
func Title(args []string) {
	path, md := readSource("title", args)

	title, err := markdown.ExtractTitle(md)
	if err != nil {
		fail(path, err)
	}
	fmt.Println(title)
}

// Diff shows how rebuilding a page would change its current output
func Diff(args []string) {
	path, md := readSource("diff", args)
	cfg := loadConfig()

	src, err := filepath.Abs(path)
	if err != nil {
		fail("Error resolving "+path, err)
	}
	dest, err := site.OutputPath(cfg.ContentDir, cfg.OutputDir, src)
	if err != nil {
		fail("Page is not part of the site", err)
	}

	tmpl, err := os.ReadFile(cfg.Template)
	if err != nil {
		fail("Error reading template", err)
	}

	page, err := site.RenderPage(md, string(tmpl), cfg.BasePath)
	if err != nil {
		fail(path, err)
	}

	out, err := diff.Generate(dest, page)
	if err != nil {
		fail("Error generating diff", err)
	}
	if out == "" {
		fmt.Println(styles.SuccessStyle.Render("✓ Output is up to date"))
		return
	}
	fmt.Print(out)
}
