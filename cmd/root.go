/*
Package cmd implements the command-line interface for vimnav.
It provides commands for running the navigator and inspecting what it sends to the page.
*/
package cmd

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theapemachine/vimnav/pkg/config"
)

/*
Embed a mini filesystem into the binary to hold the default config file.
This will be written to the home directory of the user running vimnav,
which allows the user to easily override the config file.
*/
//go:embed cfg/*
var embedded embed.FS

/*
rootCmd represents the base command when called without any subcommands
*/
var (
	projectName = "vimnav"
	cfgFile     string

	rootCmd = &cobra.Command{
		Use:   "vimnav",
		Short: "Vim-style scrolling and link hints for a browser-hosted chat client",
		Long:  longRoot,
	}
)

/*
Execute is the main entry point for the vimnav CLI. It initializes the root command
and executes it.
*/
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yml",
		"config file (default is $HOME/."+projectName+"/config.yml)",
	)
}

/*
initConfig writes the default config file to the user's home directory if it
doesn't exist, and then reads it. An absolute --config path is read as is.
*/
func initConfig() {
	var err error

	config.SetDefaults(viper.GetViper())

	viper.SetEnvPrefix(projectName)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if filepath.IsAbs(cfgFile) {
		viper.SetConfigFile(cfgFile)
	} else {
		if err = writeConfig(); err != nil {
			log.Fatal("could not write default config", "error", err)
		}

		home, _ := os.UserHomeDir()
		viper.SetConfigName(strings.TrimSuffix(cfgFile, filepath.Ext(cfgFile)))
		viper.SetConfigType("yml")
		viper.AddConfigPath(filepath.Join(home, "."+projectName))
	}

	if err = viper.ReadInConfig(); err != nil {
		log.Fatal("could not read config", "error", err)
	}
}

/*
writeConfig writes the default config file to the user's home directory.
*/
func writeConfig() (err error) {
	var (
		home, _ = os.UserHomeDir()
		fh      fs.File
		buf     bytes.Buffer
	)

	configDir := filepath.Join(home, "."+projectName)
	if !CheckFileExists(configDir) {
		if err = os.MkdirAll(configDir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	fullPath := filepath.Join(configDir, cfgFile)

	if CheckFileExists(fullPath) {
		return nil
	}

	if fh, err = embedded.Open("cfg/config.yml"); err != nil {
		return fmt.Errorf("failed to open embedded config file: %w", err)
	}
	defer fh.Close()

	if _, err = io.Copy(&buf, fh); err != nil {
		return fmt.Errorf("failed to read embedded config file: %w", err)
	}

	if err = os.WriteFile(fullPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	log.Info("wrote config file", "path", fullPath)
	return nil
}

func CheckFileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !errors.Is(err, os.ErrNotExist)
}

/*
longRoot contains the detailed help text for the root command.
*/
var longRoot = `
vimnav opens a chat web client in Chromium and drives it from the terminal
with Vim-style keys: hjkl to scroll, u/d for larger steps, G and home for the
ends of the conversation, and f to overlay two-letter hints on every clickable
element.
`
