package app

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/vk/pinlock/internal/registry"
)

// recordView is the JSON projection of a registry record. Optional fields
// are omitted so consumers see exactly what the pin file declared.
type recordView struct {
	Name      string `json:"name"`
	Kind      string `json:"kind,omitempty"`
	Version   string `json:"version"`
	Integrity string `json:"integrity,omitempty"`
	SourceURL string `json:"source_url,omitempty"`
}

func viewOf(rec registry.Record) recordView {
	return recordView{
		Name:      rec.Name,
		Kind:      rec.Kind,
		Version:   rec.Version,
		Integrity: rec.Integrity,
		SourceURL: rec.SourceURL,
	}
}

// List prints every registered record in insertion order, as a table or
// as a JSON array.
func (a *App) List(asJSON bool) error {
	if asJSON {
		views := make([]recordView, 0, a.registry.Len())
		for rec := range a.registry.All() {
			views = append(views, viewOf(rec))
		}
		return a.printJSON(views)
	}

	tw := tabwriter.NewWriter(a.outW, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tVERSION\tINTEGRITY")
	for rec := range a.registry.All() {
		integrity := rec.Integrity
		if integrity == "" {
			integrity = "-"
		}
		kind := rec.Kind
		if kind == "" {
			kind = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", rec.Name, kind, rec.Version, integrity)
	}
	return tw.Flush()
}

// Get prints the record registered under name, or fails with the
// registry's not-found error.
func (a *App) Get(name string, asJSON bool) error {
	rec, err := a.registry.Get(name)
	if err != nil {
		return err
	}

	if asJSON {
		return a.printJSON(viewOf(rec))
	}

	fmt.Fprintf(a.outW, "name:      %s\n", rec.Name)
	if rec.Kind != "" {
		fmt.Fprintf(a.outW, "kind:      %s\n", rec.Kind)
	}
	fmt.Fprintf(a.outW, "version:   %s\n", rec.Version)
	if rec.Integrity != "" {
		fmt.Fprintf(a.outW, "integrity: %s\n", rec.Integrity)
	}
	if rec.SourceURL != "" {
		fmt.Fprintf(a.outW, "source:    %s\n", rec.SourceURL)
	}
	return nil
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.outW)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
