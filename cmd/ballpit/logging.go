package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/ballpit/config"
)

const (
	logFileName = "ballpit.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns a nop logger unless debug is set; the terminal owns stdout
// The log file is rotated aside once it exceeds maxLogSize
func setupLogging(debug bool, dir string) (*zap.Logger, *os.File, error) {
	if !debug {
		return zap.NewNop(), nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("ballpit-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			return nil, nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(f), zapcore.DebugLevel)
	return zap.New(core, zap.AddCaller()), f, nil
}

// bootstrap loads the config, opens the logger it selects and logs every config repair
func bootstrap() (*config.Config, *zap.Logger, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	logger, f, err := setupLogging(debugFlag || cfg.Log.Debug, cfg.Log.Dir)
	if err != nil {
		return nil, nil, nil, err
	}
	closeLog := func() {
		_ = logger.Sync()
		if f != nil {
			f.Close()
		}
	}
	logRepairs(logger, cfg.Normalize())
	return cfg, logger, closeLog, nil
}

// reloadConfig rereads the config file for a rebuild
func reloadConfig(logger *zap.Logger) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logRepairs(logger, cfg.Normalize())
	return cfg, nil
}

func logRepairs(logger *zap.Logger, repairs []string) {
	for _, r := range repairs {
		logger.Warn("config repaired", zap.String("detail", r))
	}
}
