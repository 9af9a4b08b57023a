// Package config loads mmtui settings through viper: a .mmtui config
// file found from the working directory, MMTUI_ environment overrides,
// and sensible defaults under the home directory.
package config

import (
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/holynakamoto/mmtui/pkg/timeutil"
)

// Settings is the resolved configuration.
type Settings struct {
	// PicksPath is the base directory for saved bracket picks.
	PicksPath string
	// BracketOverride is a local ESPN-format JSON file that replaces
	// every network bracket source when set.
	BracketOverride string
	// ChatURL is the websocket endpoint of the chat relay.
	ChatURL string
	// ChatRoom is the room joined on connect.
	ChatRoom string
	// ChatHandle is the display name sent with chat messages.
	ChatHandle string
	// RefreshInterval is the live score polling period.
	RefreshInterval time.Duration
	// LogPath receives the application log; stdout belongs to the UI.
	LogPath string
}

// Load reads the config file and environment. A missing config file is
// not an error; every key has a default.
func Load() (*Settings, error) {
	v := viper.New()

	v.SetDefault("path", "~/.mmtui/picks")
	v.SetDefault("bracket", "")
	v.SetDefault("chat-url", "ws://localhost:8787/ws")
	v.SetDefault("chat-room", "march-madness")
	v.SetDefault("chat-handle", "")
	v.SetDefault("refresh", "30s")
	v.SetDefault("log", "~/.mmtui/mmtui.log")

	v.SetConfigName(".mmtui") // .yaml is implicit
	v.SetEnvPrefix("MMTUI")
	v.AutomaticEnv()
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	picksPath, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}
	logPath, err := homedir.Expand(v.GetString("log"))
	if err != nil {
		return nil, err
	}

	// "refresh" accepts friendly forms like "45s" or "2 minutes".
	refresh, _, err := timeutil.ParseInterval(v.GetString("refresh"))
	if err != nil {
		refresh = timeutil.DefaultInterval
	}

	return &Settings{
		PicksPath:       picksPath,
		BracketOverride: v.GetString("bracket"),
		ChatURL:         v.GetString("chat-url"),
		ChatRoom:        v.GetString("chat-room"),
		ChatHandle:      v.GetString("chat-handle"),
		RefreshInterval: refresh,
		LogPath:         logPath,
	}, nil
}
