// Package config provides configuration management for the predictions
// dashboard.
//
// Settings are read from an optional YAML file and then overridden by the
// environment. A .env file next to the binary is honoured as well:
//
//	_ = config.LoadDotEnv(".env")
//	settings, err := config.Load("dashboard.yaml") // defaults if missing
//	settings.ApplyEnv()
//
// # Environment
//
//   - PREDICTIONS_DATA_PATH: path of the predictions CSV
//   - PREDICTIONS_PAGE_SIZE: rows per table page
//   - PREDICTIONS_THEME: dark or light
package config
