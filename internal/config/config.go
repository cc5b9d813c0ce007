package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Game configures a local terminal game.
type Game struct {
	Seed     int64  `env:"SLICER_SEED"`                      // 0 picks a time-based seed
	FPS      int    `env:"SLICER_FPS"       envDefault:"60"` // Frame rate of the loop
	LogLevel string `env:"SLICER_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"SLICER_LOG_FILE"` // Empty discards logs; the terminal belongs to the game
	Audio    bool   `env:"SLICER_AUDIO"     envDefault:"true"`
}

// SSH configures the SSH server.
type SSH struct {
	Host          string        `env:"SSH_HOST"           envDefault:"::"`
	Port          string        `env:"SSH_PORT"           envDefault:"2222"`
	HostKeyPath   string        `env:"SSH_HOST_KEY"       envDefault:"/app/keys/host_key"`
	ShutdownGrace time.Duration `env:"SSH_SHUTDOWN_GRACE" envDefault:"15s"`
	LogLevel      string        `env:"SLICER_LOG_LEVEL"   envDefault:"info"`
	FPS           int           `env:"SLICER_FPS"         envDefault:"60"`
}

// Web configures the landing page server.
type Web struct {
	Host        string        `env:"WEB_HOST"         envDefault:"0.0.0.0"`
	Port        string        `env:"WEB_PORT"         envDefault:"8080"`
	SSHHost     string        `env:"SSH_DISPLAY_HOST" envDefault:"your-server.com"`
	SSHPort     string        `env:"SSH_DISPLAY_PORT" envDefault:"22"`
	LogLevel    string        `env:"SLICER_LOG_LEVEL" envDefault:"info"`
	ReadTimeout time.Duration `env:"WEB_READ_TIMEOUT" envDefault:"10s"`
}

// LoadGame reads the local game configuration.
func LoadGame() (Game, error) {
	var cfg Game
	if err := ParseEnv(&cfg); err != nil {
		return Game{}, err
	}
	if cfg.FPS <= 0 {
		return Game{}, fmt.Errorf("SLICER_FPS must be positive, got %d", cfg.FPS)
	}
	return cfg, nil
}

// LoadSSH reads the SSH server configuration.
func LoadSSH() (SSH, error) {
	var cfg SSH
	if err := ParseEnv(&cfg); err != nil {
		return SSH{}, err
	}
	if cfg.FPS <= 0 {
		return SSH{}, fmt.Errorf("SLICER_FPS must be positive, got %d", cfg.FPS)
	}
	return cfg, nil
}

// LoadWeb reads the web server configuration.
func LoadWeb() (Web, error) {
	var cfg Web
	if err := ParseEnv(&cfg); err != nil {
		return Web{}, err
	}
	return cfg, nil
}

// Level parses a log level name, falling back to info.
func Level(name string) log.Level {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
