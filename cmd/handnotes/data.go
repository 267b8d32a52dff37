package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lox/handnotes/internal/fileutil"
)

// DataCmd groups bulk interchange operations
type DataCmd struct {
	Export DataExportCmd `cmd:"" help:"Write all hands, players and settings as JSON"`
	Import DataImportCmd `cmd:"" help:"Replace stored data from a JSON export"`
}

type DataExportCmd struct {
	Out string `kong:"help='Output file (default stdout)',type='path'"`
}

func (c *DataExportCmd) Run(a *app) error {
	doc, err := a.store.Export()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if c.Out == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := fileutil.WriteFileAtomic(c.Out, data, 0o644); err != nil {
		return err
	}
	a.logger.Info("exported data", "file", c.Out, "hands", len(doc.Hands), "players", len(doc.Players))
	return nil
}

type DataImportCmd struct {
	File string `kong:"arg,help='JSON export file',type='path'"`
}

func (c *DataImportCmd) Run(a *app) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	if err := a.store.Import(data); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	a.logger.Info("imported data", "file", c.File)
	return nil
}
