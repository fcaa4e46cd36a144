package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"git.lost.host/meutraa/notechart/internal/parser"
	"gopkg.in/yaml.v3"
)

// ReadImport loads import settings from a YAML file in fsys. Keys missing
// from the file keep their defaults.
func ReadImport(fsys fs.FS, name string) (*parser.Config, error) {
	c := parser.DefaultConfig()
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not decode %s: %w", name, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &c, nil
}
