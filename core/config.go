package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		AppName      string
		Env          string
		Build        string
		Debug        bool
		TestMode     bool
		RollbarToken string
		WorkDir      string

		Server struct {
			Host            string
			DebugHost       string
			ShutdownTimeout time.Duration
		}

		Record struct {
			Years            int
			SemestersPerYear int
		}

		Storage struct {
			Driver       string // memory | file | badger
			Path         string
			Key          string
			WriteTimeout time.Duration
		}

		Catalog struct {
			Path string // YAML file; the built-in catalog is used when empty
		}
	}
)

// storage drivers
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageBadger = "badger"
)

func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("testMode", false)
	conf.SetDefault("appName", "GPA Tracker")
	conf.SetDefault("build", "develop")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("server.host", "127.0.0.1:8000")
	conf.SetDefault("server.debugHost", "127.0.0.1:4000")
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("record.years", 4)
	conf.SetDefault("record.semestersPerYear", 2)
	conf.SetDefault("storage.driver", StorageFile)
	conf.SetDefault("storage.path", "gpaTrackerData.json")
	conf.SetDefault("storage.key", "gpaTrackerData")
	conf.SetDefault("storage.writeTimeout", 3*time.Second)
	conf.SetDefault("catalog.path", "")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
		conf.SetDefault("storage.driver", StorageMemory)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	workDir := Getwd()
	dotEnvPath := filepath.Join(workDir, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	c := &Config{
		AppName:      conf.GetString("appName"),
		Env:          env,
		Build:        conf.GetString("build"),
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		RollbarToken: conf.GetString("rollbarToken"),
		WorkDir:      workDir,
	}
	c.Server.Host = conf.GetString("server.host")
	c.Server.DebugHost = conf.GetString("server.debugHost")
	c.Server.ShutdownTimeout = conf.GetDuration("server.shutdownTimeout")
	c.Record.Years = conf.GetInt("record.years")
	c.Record.SemestersPerYear = conf.GetInt("record.semestersPerYear")
	c.Storage.Driver = strings.ToLower(conf.GetString("storage.driver"))
	c.Storage.Path = conf.GetString("storage.path")
	c.Storage.Key = conf.GetString("storage.key")
	c.Storage.WriteTimeout = conf.GetDuration("storage.writeTimeout")
	c.Catalog.Path = conf.GetString("catalog.path")
	return c
}
