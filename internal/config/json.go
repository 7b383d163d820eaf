package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		SealKey string `json:"seal_key"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	OAuth struct {
		ClientID      string `json:"client_id"`
		ClientSecret  string `json:"client_secret"`
		AuthEndpoint  string `json:"auth_endpoint"`
		TokenEndpoint string `json:"token_endpoint"`
		RedirectPort  int    `json:"redirect_port"`
		Scopes        string `json:"scopes"`
	} `json:"oauth,omitempty"`

	Drive struct {
		APIBase        string   `json:"api_base"`
		UploadBase     string   `json:"upload_base"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"drive,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Sync struct {
		Debounce Duration `json:"debounce"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SealKey: jsonCfg.App.SealKey,
			Version: jsonCfg.App.Version,
		},
		OAuth: OAuth{
			ClientID:      jsonCfg.OAuth.ClientID,
			ClientSecret:  jsonCfg.OAuth.ClientSecret,
			AuthEndpoint:  jsonCfg.OAuth.AuthEndpoint,
			TokenEndpoint: jsonCfg.OAuth.TokenEndpoint,
			RedirectPort:  jsonCfg.OAuth.RedirectPort,
			Scopes:        jsonCfg.OAuth.Scopes,
		},
		Drive: Drive{
			APIBase:        jsonCfg.Drive.APIBase,
			UploadBase:     jsonCfg.Drive.UploadBase,
			RequestTimeout: time.Duration(jsonCfg.Drive.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Sync:         Sync{Debounce: time.Duration(jsonCfg.Sync.Debounce)},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
