package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"go.stonic.dev/stonic/internal/core/domain"
	"go.stonic.dev/stonic/internal/ui/output"
	"go.stonic.dev/stonic/internal/ui/style"
)

func printItem(w io.Writer, item domain.Item, note string) {
	out := output.New(w)
	glyph := output.Paint(out, style.KindGlyph(item.IsDir()), style.Teal)
	line := fmt.Sprintf("%s %s  %s", glyph, item.Name, output.Paint(out, item.Path, style.Slate))
	if note != "" {
		line += "  " + output.Paint(out, note, style.Muted)
	}
	_, _ = fmt.Fprintln(w, line)
}

func printResolution(w io.Writer, res domain.Resolution) {
	printItem(w, res.Item, fmt.Sprintf("(%s, %d)", res.Source, res.Score))
}

func printDone(w io.Writer, msg string) {
	out := output.New(w)
	_, _ = fmt.Fprintf(w, "%s %s\n", output.Paint(out, style.Check, style.Green), msg)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
