package site

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gerunddev/mdsite/internal/htmlnode"
	"github.com/gerunddev/mdsite/internal/markdown"
)

// Template tokens substituted by RenderPage
const (
	TitleToken   = "{{ Title }}"
	ContentToken = "{{ Content }}"
)

// ScanDirectory scans a directory for files with given extension
// Results are sorted so builds are reproducible
func ScanDirectory(dir string, ext string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && filepath.Ext(path) == ext {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// OutputPath maps a source page below contentDir to its HTML file below outputDir
func OutputPath(contentDir, outputDir, src string) (string, error) {
	rel, err := filepath.Rel(contentDir, src)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", src, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is outside %s", src, contentDir)
	}

	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ".html"
	return filepath.Join(outputDir, rel), nil
}

// CopyStaticTree mirrors src into dst and returns the number of files copied
// A missing src copies nothing
func CopyStaticTree(src, dst string) (int, error) {
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	copied := 0
	err := filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if info.IsDir() {
			return os.MkdirAll(target, 0755)
		}

		if err := copyFile(path, target, info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to copy %s: %w", path, err)
		}
		copied++
		return nil
	})

	return copied, err
}

func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// RenderPage converts a Markdown document into a full page using template
func RenderPage(md, template, basePath string) (string, error) {
	page, _, err := renderPage(md, template, basePath)
	return page, err
}

// renderPage also reports the number of nodes in the document tree
func renderPage(md, template, basePath string) (string, int, error) {
	title, err := markdown.ExtractTitle(md)
	if err != nil {
		return "", 0, err
	}

	doc, err := markdown.ParseDocument(md)
	if err != nil {
		return "", 0, err
	}

	content, err := doc.HTML()
	if err != nil {
		return "", 0, err
	}

	nodes := 0
	htmlnode.Walk(doc, func(htmlnode.Node) bool {
		nodes++
		return true
	})

	page := strings.ReplaceAll(template, TitleToken, title)
	page = strings.ReplaceAll(page, ContentToken, content)
	return rewriteRootLinks(page, basePath), nodes, nil
}

// rewriteRootLinks points root-relative href and src attributes at basePath
func rewriteRootLinks(page, basePath string) string {
	base := normalizeBasePath(basePath)
	if base == "/" {
		return page
	}
	return strings.NewReplacer(
		`href="/`, `href="`+base,
		`src="/`, `src="`+base,
	).Replace(page)
}

func normalizeBasePath(basePath string) string {
	if basePath == "" {
		return "/"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath
}
