package cmd

import (
	"fmt"
	"os"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Print the resolved configuration",
		Long: `Print the settings the other commands would use, after applying
defaults, in marquee.yaml form. Redirect the output to start a config
file:

  marquee config > marquee.yaml`,
		Usage: "marquee config",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("config takes no arguments")
	}
	res, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := res.Marshal()
	if err != nil {
		return err
	}
	if res.Path != "" {
		fmt.Printf("# source: %s\n", res.Path)
	} else {
		fmt.Println("# source: built-in defaults")
	}
	_, err = os.Stdout.Write(data)
	return err
}
