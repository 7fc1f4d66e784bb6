// gifscan decodes GIF files with the streaming decoder and reports what it
// finds. The --chunk flag feeds the decoder a bounded number of source
// bytes per call, exercising the suspend/resume path against real files.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/woozymasta/gif"
)

var cli struct {
	Debug bool     `help:"Enable debug logging."`
	Chunk int      `help:"Source bytes revealed to the decoder per call (0 = all at once)." default:"0"`
	Files []string `arg:"" name:"file" help:"GIF files to scan." type:"existingfile"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("gifscan"),
		kong.Description("Decode GIF files to color-table indices and report stream structure."),
	)

	if cli.Debug {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.Debug("debug mode enabled")
	}

	failed := false
	for _, path := range cli.Files {
		if err := scan(path, cli.Chunk); err != nil {
			logrus.Errorf("%s: %s", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func scan(path string, chunk int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read")
	}

	d := &gif.Decoder{}
	d.Init()

	src := &gif.Buffer{Data: data}
	if chunk <= 0 {
		src.WritePos = len(data)
		src.Closed = true
	}
	dst := &gif.Buffer{Data: make([]byte, 64*1024)}

	var indices []byte
	suspensions := 0
	for {
		err := d.Decode(dst, src)
		indices = append(indices, dst.Data[:dst.WritePos]...)
		dst.WritePos = 0
		if err == nil {
			break
		}
		switch {
		case errors.Is(err, gif.ErrShortRead):
			suspensions++
			if src.WritePos >= len(data) {
				return errors.Wrap(gif.ErrUnexpectedEOF, "decode")
			}
			src.WritePos += chunk
			if src.WritePos >= len(data) {
				src.WritePos = len(data)
				src.Closed = true
			}
			logrus.Debugf("short read, revealed %d/%d bytes", src.WritePos, len(data))
		case errors.Is(err, gif.ErrShortWrite):
			suspensions++
			logrus.Debugf("short write, drained %d indices", len(indices))
		default:
			return errors.Wrap(err, "decode")
		}
	}

	used := map[byte]struct{}{}
	for _, idx := range indices {
		used[idx] = struct{}{}
	}

	logrus.Infof("%s:", path)
	logrus.Infof("  screen: %dx%d", d.Width(), d.Height())
	logrus.Infof("  background index: %d", d.BackgroundColorIndex())
	logrus.Infof("  global color table: %d entries", len(d.GlobalColorTable())/3)
	logrus.Infof("  interlaced: %v", d.Interlaced())
	logrus.Infof("  indices: %d decoded, %d distinct", len(indices), len(used))
	if suspensions > 0 {
		logrus.Infof("  suspensions: %d", suspensions)
	}
	return nil
}
