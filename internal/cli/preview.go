package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gauchobites/gauchobites/internal/cli/styles"
	"github.com/gauchobites/gauchobites/internal/domain/entity"
	"github.com/gauchobites/gauchobites/internal/theme"
)

// NewPreviewCmd creates the preview command.
func NewPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the theme palettes and scales in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cli, err := NewCLI(cmd.Context())
			if err != nil {
				return err
			}
			defer cli.Close()

			lightOnly, _ := cmd.Flags().GetBool("light")
			darkOnly, _ := cmd.Flags().GetBool("dark")
			systemOnly, _ := cmd.Flags().GetBool("system")

			var themes []*entity.Theme
			switch {
			case lightOnly:
				themes = append(themes, cli.Catalog.Light())
			case darkOnly:
				themes = append(themes, cli.Catalog.Dark())
			case systemOnly:
				themes = append(themes, theme.Derive(cli.Catalog, entity.ThemeModeSystem, cli.Chain.CurrentScheme()))
			default:
				themes = append(themes, cli.Catalog.Light(), cli.Catalog.Dark())
			}

			for _, t := range themes {
				fmt.Println(renderTheme(t))
			}
			return nil
		},
	}

	cmd.Flags().Bool("light", false, "Preview only the light theme")
	cmd.Flags().Bool("dark", false, "Preview only the dark theme")
	cmd.Flags().Bool("system", false, "Preview the theme the OS scheme resolves to")

	return cmd
}

func renderTheme(t *entity.Theme) string {
	s := styles.FromTheme(t)

	var b strings.Builder
	b.WriteString(s.BoxHeader.Render(s.Badge.Render(t.Mode.String()) + " theme"))
	b.WriteString("\n")
	b.WriteString(renderPalette(s, t.Colors))
	b.WriteString("\n")
	b.WriteString(renderTypography(s, t.Typography))
	b.WriteString("\n")
	b.WriteString(renderScales(s, t))

	return s.Box.Render(b.String())
}

func renderPalette(s *styles.Styles, p entity.ColorPalette) string {
	swatches := []struct {
		name  string
		color string
	}{
		{"background", p.Background},
		{"surface", p.Surface},
		{"surface-variant", p.SurfaceVariant},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
		{"success", p.Success},
		{"warning", p.Warning},
		{"destructive", p.Destructive},
	}

	var rows []string
	for _, sw := range swatches {
		block := s.Swatch.Background(lipgloss.Color(sw.color)).Render("  ")
		name := s.Normal.Render(fmt.Sprintf("%-16s", sw.name))
		rows = append(rows, fmt.Sprintf("%s %s %s", block, name, s.Subtle.Render(sw.color)))
	}
	return strings.Join(rows, "\n") + "\n"
}

func renderTypography(s *styles.Styles, t entity.Typography) string {
	var b strings.Builder
	b.WriteString(s.Subtitle.Render("typography"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  sans %s, mono %s, line-height %.1f\n", t.FontFamily, t.MonoFamily, t.LineHeight)
	fmt.Fprintf(&b, "  sizes   xs %.0f  sm %.0f  base %.0f  lg %.0f  xl %.0f  xxl %.0f  title %.0f\n",
		t.Sizes.XS, t.Sizes.SM, t.Sizes.Base, t.Sizes.LG, t.Sizes.XL, t.Sizes.XXL, t.Sizes.Title)
	fmt.Fprintf(&b, "  weights regular %d  medium %d  semibold %d  bold %d\n",
		t.Weights.Regular, t.Weights.Medium, t.Weights.Semibold, t.Weights.Bold)
	return b.String()
}

func renderScales(s *styles.Styles, t *entity.Theme) string {
	var b strings.Builder
	b.WriteString(s.Subtitle.Render("scales"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  spacing xs %.0f  sm %.0f  md %.0f  lg %.0f  xl %.0f  xxl %.0f\n",
		t.Spacing.XS, t.Spacing.SM, t.Spacing.MD, t.Spacing.LG, t.Spacing.XL, t.Spacing.XXL)
	fmt.Fprintf(&b, "  radius  sm %.0f  md %.0f  lg %.0f  full %.0f\n",
		t.BorderRadius.SM, t.BorderRadius.MD, t.BorderRadius.LG, t.BorderRadius.Full)
	return b.String()
}
