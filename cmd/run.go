package cmd

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theapemachine/vimnav/pkg/browser"
	"github.com/theapemachine/vimnav/pkg/config"
	"github.com/theapemachine/vimnav/pkg/logging"
	"github.com/theapemachine/vimnav/pkg/ui"
	"github.com/theapemachine/vimnav/pkg/vim"
)

var (
	headlessFlag bool

	runCmd = &cobra.Command{
		Use:   "run [url]",
		Short: "Open the chat client and navigate it from the terminal",
		Long:  longRun,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(viper.GetViper())
			if err != nil {
				return err
			}

			if len(args) == 1 {
				cfg.Browser.URL = args[0]
			}

			if cmd.Flags().Changed("headless") {
				cfg.Browser.Headless = headlessFlag
			}

			logFile := cfg.Log.File
			if path := os.Getenv("VIMNAV_LOGFILE"); path != "" {
				logFile = path
			}

			if err = logging.Init(logFile, cfg.Log.Level); err != nil {
				return err
			}
			defer logging.Close()

			win, err := browser.Open(cmd.Context(), browser.Options{
				URL:      cfg.Browser.URL,
				Headless: cfg.Browser.Headless,
				Bin:      cfg.Browser.Bin,
				Queue:    cfg.Browser.Queue,
				Timeout:  cfg.Browser.Timeout,
			})
			if err != nil {
				log.Error("could not open browser", "url", cfg.Browser.URL, "error", err)
				return err
			}
			defer win.Close()

			session := vim.NewSession()
			ctrl := vim.NewController(session, win, cfg.Page)
			dispatcher := vim.NewDispatcher(session, ctrl)

			program := tea.NewProgram(ui.New(win, dispatcher, cfg.AliasMap()), tea.WithAltScreen())

			win.OnNavigate(func(url string) {
				program.Send(ui.NavigatedMsg{URL: url})
			})

			log.Info("session started", "session", session.ID, "url", cfg.Browser.URL)

			if _, err := program.Run(); err != nil {
				log.Error("Error while running program:", "error", err)
				return err
			}

			return nil
		},
	}
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&headlessFlag, "headless", false, "Run the browser without a window")
}

var longRun = `
Open the chat client in Chromium and take keyboard input from the terminal.

Keys the navigator does not use are typed into the page.

Examples:
  # Open the configured chat client.
  vimnav run

  # Open another page, logging to a file.
  VIMNAV_LOGFILE=/tmp/vimnav.log vimnav run https://example.com
`
