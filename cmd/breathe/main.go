package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/san-kum/breathe/internal/audio"
	"github.com/san-kum/breathe/internal/config"
	"github.com/san-kum/breathe/internal/session"
	"github.com/san-kum/breathe/internal/technique"
	"github.com/san-kum/breathe/internal/theme"
	"github.com/san-kum/breathe/internal/tui"
)

var (
	cycles     int
	fps        int
	noAudio    bool
	configFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "breathe [technique-id]",
		Short: "guided breathing exercises in the terminal",
		Long: "An animated breathing trainer. Run bare for the technique picker,\n" +
			"or pass a technique id to jump straight to it (see `breathe list`).",
		Args: cobra.MaximumNArgs(1),
		RunE: runSession,
	}
	rootCmd.Flags().IntVar(&cycles, "cycles", 0, "cycle count override (1-99, 0 uses the technique default)")
	rootCmd.Flags().IntVar(&fps, "fps", 0, "frames per second")
	rootCmd.Flags().BoolVar(&noAudio, "no-audio", false, "disable audio cues")
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list breathing techniques",
		RunE:  listTechniques,
	}

	rootCmd.AddCommand(listCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configFile
	if path == "" {
		p, err := config.DefaultPath()
		if err == nil {
			path = p
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// CLI flags override config values.
	if cmd.Flags().Changed("cycles") {
		cfg.Cycles = cycles
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if noAudio {
		cfg.Audio = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// techniqueID resolves which technique to launch: the positional argument
// wins, then the config file's technique setting. Empty means open the
// interactive selector.
func techniqueID(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Technique
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	catalog, err := technique.NewCatalog()
	if err != nil {
		return err
	}
	th := theme.Default()

	var sess *session.Session
	if id := techniqueID(args, cfg); id != "" {
		tech, err := catalog.Get(id)
		if err != nil {
			return fmt.Errorf("%w (see `breathe list`)", err)
		}
		sess = session.NewWithTechnique(catalog, th, tech, cfg.Cycles)
	} else {
		sess = session.New(catalog, th)
	}

	player := audio.NewPlayer()
	if cfg.Audio {
		// Missing audio hardware is not fatal; the session runs silent.
		_ = player.Start()
	}
	defer player.Stop()

	return tui.Run(sess, player, cfg.FPS)
}

func listTechniques(cmd *cobra.Command, args []string) error {
	catalog, err := technique.NewCatalog()
	if err != nil {
		return err
	}

	header := lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)

	for _, cat := range technique.Categories() {
		techs := catalog.ByCategory(cat)
		if len(techs) == 0 {
			continue
		}
		fmt.Println(header.Render(cat.Icon() + " " + cat.Display()))

		// Color codes stay out of the table so tabwriter's column widths
		// line up.
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  ID\tNAME\tPATTERN\tCYCLES\tLEVEL")
		for _, t := range techs {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%d\t%s\n",
				t.ID,
				t.Name,
				t.Pattern,
				t.DefaultCycles,
				t.Difficulty.Display(),
			)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Println()
	}

	return nil
}
