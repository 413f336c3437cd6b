package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/highvelocity/arctuner/internal/domain"
	"github.com/highvelocity/arctuner/internal/infrastructure/store"
)

func renderSettings(out io.Writer, s *store.Store, defs []domain.SettingDefinition) {
	lastCategory := ""
	for _, def := range defs {
		if def.Category != lastCategory {
			lastCategory = def.Category
			fmt.Fprintf(out, "\n%s\n", def.Category)
		}
		value, err := s.Get(def.Key)
		if err != nil {
			value = def.Default
		}
		fmt.Fprintf(out, "  %-34s %-20s [%s impact] %s\n", def.Key, value, def.Impact, def.DisplayName)
	}
}

func renderBackups(out io.Writer, records []domain.BackupRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No backups yet")
		return
	}
	for _, rec := range records {
		fmt.Fprintf(out, "%-50s %8s  %s\n", rec.Name, humanize.Bytes(uint64(rec.Size)), humanize.Time(rec.Created))
	}
}

func renderProfiles(out io.Writer, profiles []domain.Profile) {
	if len(profiles) == 0 {
		fmt.Fprintln(out, "No profiles yet")
		return
	}
	for _, p := range profiles {
		fmt.Fprintf(out, "%-24s %3d settings  created %s\n", p.Name, len(p.Settings), humanize.Time(p.Created))
	}
}

func renderHistory(out io.Writer, records []domain.ChangeRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No recorded changes")
		return
	}
	for _, rec := range records {
		switch rec.Action {
		case domain.ActionSet:
			fmt.Fprintf(out, "%s  %-13s %s: %s -> %s\n",
				rec.Timestamp.Format("2006-01-02 15:04:05"), rec.Action, rec.Key, rec.OldValue, rec.NewValue)
		case domain.ActionApplyPreset, domain.ActionApplyProfile, domain.ActionRestore:
			fmt.Fprintf(out, "%s  %-13s %s\n",
				rec.Timestamp.Format("2006-01-02 15:04:05"), rec.Action, rec.Key)
		default:
			fmt.Fprintf(out, "%s  %-13s %s\n",
				rec.Timestamp.Format("2006-01-02 15:04:05"), rec.Action, rec.Path)
		}
	}
}

func renderWarnings(out io.Writer, warnings []string) {
	for _, w := range warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
}
