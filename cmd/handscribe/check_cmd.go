package main

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/handscribe/handscribe/internal/transcript"
)

// CheckCmd parses and replays every given transcript, reporting files
// that fail validation. Directories are expanded to their .hcl files.
type CheckCmd struct {
	Paths   []string `arg:"" name:"path" help:"Transcript files or directories"`
	Jobs    int      `help:"Concurrent checks" default:"4"`
	Verbose bool     `help:"Enable debug logging"`
}

func (cmd CheckCmd) Run() error {
	logger := newLogger(cmd.Verbose)

	files, err := expandPaths(cmd.Paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no transcript files found")
	}

	errs := make([]error, len(files))
	var g errgroup.Group
	g.SetLimit(cmd.Jobs)
	for i, file := range files {
		g.Go(func() error {
			errs[i] = checkFile(file)
			return nil
		})
	}
	g.Wait()

	failed := 0
	for i, file := range files {
		if errs[i] != nil {
			failed++
			logger.Error("invalid transcript", "file", file, "error", errs[i])
		} else {
			logger.Debug("transcript ok", "file", file)
		}
	}

	logger.Info("checked transcripts", "files", len(files), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d transcripts failed", failed, len(files))
	}
	return nil
}

func checkFile(path string) error {
	f, err := transcript.Load(path)
	if err != nil {
		return err
	}
	_, err = transcript.NewReplayer(nil, nil).Replay(f)
	return err
}

func expandPaths(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		dirFiles, err := transcript.LoadDir(path)
		if err != nil {
			return nil, err
		}
		files = append(files, dirFiles...)
	}
	return files, nil
}
