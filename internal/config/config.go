package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// SetDefaults registers the built-in value of every key
func SetDefaults() {
	viper.SetDefault("default_file", "任务规划.md")
	viper.SetDefault("start_level", 2)
	viper.SetDefault("max_level", 5)
	viper.SetDefault("preview_lines", 20) // Lines of the updated document shown by --preview
	viper.SetDefault("preview_chars", 500) // Characters shown by t2s --preview
	viper.SetDefault("indent_style", "fullwidth")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("post_hook", "") // Shell command run after each write, $file is the written path
	viper.SetDefault("shell", getDefaultShell())
	viper.SetDefault("color_header", "36") // Cyan
	viper.SetDefault("color_entry", "32")  // Green
	viper.SetDefault("color_dim", "90")    // Gray
}

// Init initializes configuration with viper. An explicit file replaces the
// usual search path and must be readable. A config file that is found but
// cannot be parsed is an error.
func Init(file string) error {
	SetDefaults()

	if file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName("mdtoc")
		viper.SetConfigType("yaml")

		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mdtoc"))
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("MDTOC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

// GetDefaultFile returns the input used when no path is given, with tilde expansion
func GetDefaultFile() string {
	return expandTilde(viper.GetString("default_file"))
}

// expandTilde expands ~ to the user's home directory
func expandTilde(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetStartLevel returns the shallowest heading level listed in a TOC
func GetStartLevel() int {
	return viper.GetInt("start_level")
}

// GetMaxLevel returns the deepest heading level listed in a TOC
func GetMaxLevel() int {
	return viper.GetInt("max_level")
}

// GetPreviewLines returns how many document lines --preview prints
func GetPreviewLines() int {
	return viper.GetInt("preview_lines")
}

// GetPreviewChars returns how many characters t2s --preview prints
func GetPreviewChars() int {
	return viper.GetInt("preview_chars")
}

// GetIndentStyle returns the paragraph indent style
func GetIndentStyle() string {
	return viper.GetString("indent_style")
}

// GetLogLevel returns the logrus level name
func GetLogLevel() string {
	return viper.GetString("log_level")
}

// GetPostHook returns the post-write hook command
func GetPostHook() string {
	return viper.GetString("post_hook")
}

// GetShell returns the shell used for hooks
func GetShell() string {
	return viper.GetString("shell")
}

// GetColorHeader returns ANSI color code for preview headings
func GetColorHeader() string {
	return viper.GetString("color_header")
}

// GetColorEntry returns ANSI color code for TOC entries
func GetColorEntry() string {
	return viper.GetString("color_entry")
}

// GetColorDim returns ANSI color code for secondary text
func GetColorDim() string {
	return viper.GetString("color_dim")
}

func getDefaultShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/sh"
}
