package generator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/v19i/openapi-enum-arrays/enumerrors"
	"github.com/v19i/openapi-enum-arrays/internal/fileutil"
)

// DefaultOutputBase is the file name, without extension, written into the
// output directory when no output path is given.
const DefaultOutputBase = "enums.gen"

// readInput returns the input text and the path it was read from.
func (cfg *generateConfig) readInput() (string, string, error) {
	if cfg.inputText != nil {
		return *cfg.inputText, "", nil
	}

	path := ""
	switch {
	case cfg.inputPath != nil:
		path = *cfg.inputPath
	case cfg.outputDir != "":
		found, err := fileutil.FindFile(cfg.outputDir, fileutil.TypesFileName)
		if err != nil {
			return "", "", &enumerrors.EnvironmentError{
				Kind:    enumerrors.KindInput,
				Path:    cfg.outputDir,
				Message: "no " + fileutil.TypesFileName + " found",
				Cause:   err,
			}
		}
		path = found
	default:
		return "", "", &enumerrors.EnvironmentError{
			Kind:    enumerrors.KindInput,
			Message: "no input text, input path or output directory given",
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", &enumerrors.EnvironmentError{Kind: enumerrors.KindInput, Path: path, Cause: err}
	}
	return string(data), path, nil
}

// destination returns the output file path, or "" when the output is not
// to be written.
func (cfg *generateConfig) destination() string {
	if cfg.outputPath != "" {
		return cfg.outputPath
	}
	if cfg.outputDir != "" {
		return filepath.Join(cfg.outputDir, DefaultOutputBase+cfg.format.Extension())
	}
	return ""
}

// writeOutput writes output to path, creating parent directories.
func writeOutput(path, output string) error {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return &enumerrors.EnvironmentError{
			Kind:    enumerrors.KindDestination,
			Path:    path,
			Message: "destination is a directory",
		}
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &enumerrors.EnvironmentError{Kind: enumerrors.KindDestination, Path: path, Cause: err}
	}

	if err := fileutil.WriteFile(path, []byte(output)); err != nil {
		return &enumerrors.EnvironmentError{Kind: enumerrors.KindDestination, Path: path, Cause: err}
	}
	return nil
}
