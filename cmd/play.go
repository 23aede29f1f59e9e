package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a drill directly",
	Long: `Open a drill without going through the menu. Without --category the
config file's default_category is used. Esc returns to the home menu.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("category")
		if id == "" {
			id = defaultCategory(cmd)
		}
		return runApp(cmd, id)
	},
}

func init() {
	playCmd.Flags().StringP("category", "c", "", "Category ID (see \"mathdrill categories\")")
}

// defaultCategory reads default_category from the config without opening
// the store. Config errors surface later from setup.
func defaultCategory(cmd *cobra.Command) string {
	cfg, err := loadConfig(cmd)
	if err != nil || cfg.DefaultCategory == "" {
		return "multiplication-2digit"
	}
	return cfg.DefaultCategory
}
