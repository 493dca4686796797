package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, logFile, err := setupLogging(false, dir)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	if logger == nil {
		t.Fatal("Expected a nop logger")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Log directory should not be created when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, logFile, err := setupLogging(true, dir)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	defer logFile.Close()

	logPath := filepath.Join(dir, logFileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatal("Expected log file to be created")
	}

	logger.Info("Test log message")
	if err := logger.Sync(); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)

	data := make([]byte, maxLogSize+1)
	if err := os.WriteFile(logPath, data, 0o644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	_, logFile, err := setupLogging(true, dir)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	_, logFile, err := setupLogging(true, t.TempDir())
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	defer logFile.Close()

	if logFile == os.Stdout || logFile == os.Stderr {
		t.Error("Log output should not be stdout or stderr")
	}
}
