package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Server   Server   `koanf:"server"`
	Database Database `koanf:"db"`
	Gemini   Gemini   `koanf:"gemini"`
	Cors     Cors     `koanf:"cors"`
}

type Server struct {
	Addr string `koanf:"addr"`
}

type Database struct {
	Path string `koanf:"path"`
}

type Gemini struct {
	ApiKey         string `koanf:"apikey"`
	Model          string `koanf:"model"`
	TimeoutSeconds int    `koanf:"timeoutseconds"`
}

type Cors struct {
	AllowedOrigin string `koanf:"allowedorigin"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Server: Server{
			Addr: ":8081",
		},
		Database: Database{
			Path: "./saheli.db",
		},
		Gemini: Gemini{
			Model:          "gemini-2.0-flash",
			TimeoutSeconds: 60,
		},
		Cors: Cors{
			AllowedOrigin: "*",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "SAHELI_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "SAHELI_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
