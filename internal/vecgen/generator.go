package vecgen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/tools/imports"
)

// File is one rendered output file.
type File struct {
	Name    string
	Size    int
	Types   []string
	Content []byte
}

// Generator renders config-driven vector sources.
type Generator struct {
	cfg    *Config
	tmpl   *template.Template
	logger *zap.Logger
}

// New returns a Generator for cfg. A nil logger disables logging.
func New(cfg *Config, logger *zap.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	tmpl, err := parseTemplate()
	if err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, tmpl: tmpl, logger: logger}, nil
}

// Render executes the template once per configured dimension and returns
// the formatted sources in config order.
func (g *Generator) Render() ([]File, error) {
	files := make([]File, 0, len(g.cfg.Dimensions))
	for _, d := range g.cfg.Dimensions {
		var buf bytes.Buffer
		if err := g.tmpl.Execute(&buf, newFileData(g.cfg, d)); err != nil {
			return nil, fmt.Errorf("vecgen: render %s: %w", d.File, err)
		}

		// Drops imports a config leaves unused, e.g. math without float scalars.
		src, err := imports.Process(d.File, buf.Bytes(), &imports.Options{
			Comments:  true,
			TabIndent: true,
			TabWidth:  8,
		})
		if err != nil {
			return nil, fmt.Errorf("vecgen: format %s: %w", d.File, err)
		}

		types := make([]string, len(g.cfg.Scalars))
		for i, s := range g.cfg.Scalars {
			types[i] = typeName(d, s)
		}
		g.logger.Debug("rendered file",
			zap.String("file", d.File),
			zap.Int("size", d.Size),
			zap.Strings("types", types),
			zap.Int("bytes", len(src)))

		files = append(files, File{Name: d.File, Size: d.Size, Types: types, Content: src})
	}
	return files, nil
}

// WriteTo renders all files and writes them into dir.
func (g *Generator) WriteTo(dir string) error {
	files, err := g.Render()
	if err != nil {
		return err
	}

	for _, f := range files {
		target := filepath.Join(dir, f.Name)
		if err := os.WriteFile(target, f.Content, 0o644); err != nil {
			return fmt.Errorf("vecgen: write %s: %w", target, err)
		}
		g.logger.Info("wrote file", zap.String("path", target), zap.Int("types", len(f.Types)))
	}
	return nil
}
