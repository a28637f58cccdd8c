package main

import (
	"fmt"
	"io"

	"github.com/casualjim/scribe/article"
	"github.com/casualjim/scribe/pkg/uuidx"
	"github.com/casualjim/scribe/provider"
	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
)

// streamTo prints a colored header and every fragment as it arrives.
func streamTo(w io.Writer, model string, stream *provider.Stream) (string, error) {
	fmt.Fprintf(w, "%s\n\n", color.MagentaString(model))
	text, err := article.Collect(stream, func(fragment string) {
		fmt.Fprint(w, fragment)
	})
	fmt.Fprintln(w)
	if err != nil && text != "" {
		fmt.Fprintf(w, "%s\n", color.YellowString("[stream interrupted, partial output kept]"))
	}
	return text, err
}

func renderMarkdown(w io.Writer, content string) error {
	glam, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return err
	}
	out, err := glam.Render(content)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}

func printArticleLine(w io.Writer, a article.Article) {
	fmt.Fprintf(w, "%s  %s  %s  %s\n",
		color.CyanString(uuidx.Short(a.ID)),
		a.UpdatedAt.String(),
		color.MagentaString(a.Model),
		a.Title(),
	)
}
