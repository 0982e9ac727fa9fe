package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type jsonConfig struct {
	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`

	App struct {
		ManifestPath string `json:"manifest_path"`
		SpecPath     string `json:"spec_path"`
	} `json:"app,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
		App: App{
			ManifestPath: jsonCfg.App.ManifestPath,
			SpecPath:     jsonCfg.App.SpecPath,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
