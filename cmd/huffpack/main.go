// Command huffpack compresses and decompresses files with static Huffman
// coding.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chronos-tachyon/huffpack/container"
	"github.com/chronos-tachyon/huffpack/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		return 2
	}
	logg := logger.New(stderr, cfg.verbose)
	cli := &app{cfg: cfg, log: logg, stdout: stdout}

	switch cfg.verb {
	case "compress":
		_, err = cli.compress(cfg.paths[0], cfg.paths[1])
	case "decompress":
		err = cli.decompress(cfg.paths[0], cfg.paths[1])
	case "roundtrip":
		err = cli.roundTrip(cfg.paths[0], cfg.paths[1], cfg.paths[2])
	}
	if err != nil {
		logg.Errorf("%s: %v", cfg.verb, err)
		return 1
	}
	return 0
}

type app struct {
	cfg    config
	log    logger.Logger
	stdout io.Writer
}

type stats struct {
	inSize  int64
	outSize int64
}

// rate is the output size as a percentage of the input size.
func (s stats) rate() float64 {
	if s.inSize == 0 {
		return 0
	}
	return float64(s.outSize) / float64(s.inSize) * 100
}

func (a *app) compress(inPath, outPath string) (stats, error) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return stats{}, err
	}
	a.log.Debugf("read %d bytes from %s", len(data), inPath)

	f, err := container.Compress(data)
	if err != nil {
		return stats{}, err
	}
	if a.cfg.dump {
		if _, err := f.Table.Dump(a.stdout); err != nil {
			return stats{}, err
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return stats{}, err
	}
	if err := writeFileAtomic(outPath, buf.Bytes()); err != nil {
		return stats{}, err
	}

	s := stats{inSize: int64(len(data)), outSize: int64(buf.Len())}
	a.log.Infof("%s has been compressed to %s", filepath.Base(inPath), filepath.Base(outPath))
	a.log.Infof("Input size: %d", s.inSize)
	a.log.Infof("Output size: %d", s.outSize)
	a.log.Infof("A compressed rate of: %.2f%%", s.rate())
	return s, nil
}

func (a *app) decompress(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	var f container.File
	if _, err := f.ReadFrom(in); err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	a.log.Debugf("%s: %d symbols, %d codes, %d payload bytes", inPath, f.Length, f.Table.Len(), len(f.Payload))

	data, err := f.Decompress()
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	if err := writeFileAtomic(outPath, data); err != nil {
		return err
	}
	a.log.Infof("%s has been decompressed to %s", filepath.Base(inPath), filepath.Base(outPath))
	return nil
}

func (a *app) roundTrip(inPath, compressedPath, decompressedPath string) error {
	if _, err := a.compress(inPath, compressedPath); err != nil {
		return err
	}
	return a.decompress(compressedPath, decompressedPath)
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// into place, so path is never left holding partial output.
func writeFileAtomic(path string, data []byte) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
