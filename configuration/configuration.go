// Package configuration reads the tree settings from a Lua file.
//
// The file is a Lua chunk returning a table, for example:
//
//	return {
//	   soft_ratio = "3/5",
//	   strict_ratio = "1/2",
//	   logging = {
//	      directory = "log",
//	      file = "wbtree.log",
//	      size = 1048576,
//	      count = 10,
//	      levels = { wbtree = "debug" },
//	   },
//	}
package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/g-m-twostay/go-wbtree/Trees"
	"github.com/g-m-twostay/go-wbtree/fault"
)

// basic defaults
const (
	defaultSoftRatio   = "3/5"
	defaultStrictRatio = "1/2"

	defaultLogDirectory = "log"
	defaultLogFile      = "wbtree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	// LogTag is the logger channel of the tree.
	LogTag = "wbtree"

	// lower bounds enforced by logger.Initialise
	minLogCount = 10
	minLogSize  = 20000
)

// Configuration - the settings read from the configuration file
type Configuration struct {
	SoftRatio   string               `gluamapper:"soft_ratio" json:"soft_ratio"`
	StrictRatio string               `gluamapper:"strict_ratio" json:"strict_ratio"`
	Logging     logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default returns the configuration used when a setting is missing.
func Default() *Configuration {
	return &Configuration{
		SoftRatio:   defaultSoftRatio,
		StrictRatio: defaultStrictRatio,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// GetConfiguration - read and validate the configuration file; settings
// not present in the file keep their defaults. A relative log directory is
// taken relative to the directory of the file. The logging block is checked
// against the limits of logger.Initialise, so it can be passed there as is;
// the directory itself isn't required to exist yet.
func GetConfiguration(fileName string) (*Configuration, error) {
	if fileName == "" {
		return nil, fault.ErrRequiredConfigFile
	}
	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(fileName); os.IsNotExist(err) {
		return nil, fault.ErrNotFoundConfigFile
	}

	options := Default()
	if err := ParseConfigurationFile(fileName, options); err != nil {
		return nil, err
	}
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(filepath.Dir(fileName), options.Logging.Directory)
	}
	if err := validLogging(&options.Logging); err != nil {
		return nil, err
	}
	if _, err := options.TreeConfig(nil); err != nil {
		return nil, err
	}
	return options, nil
}

func validLogging(l *logger.Configuration) error {
	if l.File == "" || filepath.Base(l.File) != l.File {
		return fault.ErrLogFileName
	}
	if l.Size < minLogSize {
		return fault.ErrLogSizeTooSmall
	}
	if l.Count < minLogCount {
		return fault.ErrLogCountTooSmall
	}
	return nil
}

// TreeConfig converts the ratios into a Trees.Config logging to log, which
// may be nil.
func (c *Configuration) TreeConfig(log *logger.L) (Trees.Config, error) {
	soft, err := Trees.ParseRatio(c.SoftRatio)
	if err != nil {
		return Trees.Config{}, err
	}
	strict, err := Trees.ParseRatio(c.StrictRatio)
	if err != nil {
		return Trees.Config{}, err
	}
	cfg := Trees.Config{Soft: soft, Strict: strict, Log: log}
	return cfg, cfg.Valid()
}
