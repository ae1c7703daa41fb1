package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
)

func renderResponse(w io.Writer, resp styling.Response) {
	fmt.Fprintf(w, "Size: %s\n", resp.Profile.Size)
	fmt.Fprintf(w, "Shape: %s\n", resp.Profile.Shape)
	if resp.Profile.Undertone != "" {
		fmt.Fprintf(w, "Undertone: %s\n", resp.Profile.Undertone)
	}
	if resp.Weather != nil {
		fmt.Fprintf(w, "Weather: %s, %.1f°C\n", resp.Weather.Condition, resp.Weather.TempC)
	}
	for _, section := range resp.Sections {
		if len(section.Tips) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", section.Title)
		for _, tip := range section.Tips {
			fmt.Fprintf(w, "  - %s: %s\n", tip.Label, tip.Text)
		}
	}
	if len(resp.Unavailable) > 0 {
		fmt.Fprintf(w, "\nUnavailable: %s\n", strings.Join(resp.Unavailable, ", "))
	}
	if resp.Saved {
		fmt.Fprintln(w, "\nOutfit saved.")
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
