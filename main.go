package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glavchev79/xExpEff/config"
	"github.com/glavchev79/xExpEff/dataset"
	"github.com/glavchev79/xExpEff/logging"
)

var Version = "dev"

var (
	logFile    = flag.String("debug", "", "Write Debug Logs to file")
	configFile = flag.String("config", "sfpredict.yaml", "Settings file (YAML)")
	writeCfg   = flag.Bool("write-config", false, "write the effective settings to the --config file and exit")
)

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: sfpredict [--config file] [--debug debug.log] [data.csv|view.json]")
		flag.PrintDefaults()
	}

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	logging.Infof("sfpredict %s: started", Version)

	settings, err := loadSettings(*configFile)
	if err != nil {
		logging.Errorf("settings: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *writeCfg {
		if err := settings.Save(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Settings written to", *configFile)
		return
	}

	inputPath := resolveDataPath(flag.Args(), settings)

	ds, loadErr := loadDatasetAuto(inputPath)
	if loadErr != nil {
		// keep going with an empty table; the error is shown in the footer too
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", loadErr)
		logging.Errorf("load %q: %v", inputPath, loadErr)
		ds = dataset.Empty()
	}

	m := NewModel(ds, settings, inputPath, loadErr)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logging.Errorf("Tea program error: %v", err)
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

// loadSettings applies .env, the settings file and the environment, in that
// order. A missing settings file means defaults; a broken one is an error.
func loadSettings(path string) (*config.Settings, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: .env: %v\n", err)
		logging.Warnf(".env: %v", err)
	}

	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	settings.ApplyEnv()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	return settings, nil
}

// resolveDataPath picks the data file: positional argument first, then the
// settings (which already carry the environment override).
func resolveDataPath(args []string, settings *config.Settings) string {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0]
	}
	return settings.DataPath
}

func loadDatasetAuto(path string) (*dataset.Dataset, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return loadSnapshotFile(path)
	default:
		return dataset.Load(path)
	}
}

// loadSnapshotFile reopens a view previously exported as JSON.
func loadSnapshotFile(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	dto, err := ReadSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("error reading snapshot %q: %w", path, err)
	}
	return datasetFromSnapshot(dto)
}
