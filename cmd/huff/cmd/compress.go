package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bytepress/huff/compress"
	"github.com/bytepress/huff/config"
	"github.com/bytepress/huff/persistence"
	"github.com/bytepress/huff/shared"
)

var compressCmd = &cobra.Command{
	Use:   "compress <file>...",
	Short: "Compress files",
	Long: `Each input file is compressed into <file>` + config.DefaultSuffix + `. Multiple files
are processed concurrently; each file still goes through the two-pass
count-then-encode pipeline on its own.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var eg errgroup.Group
		for _, name := range args {
			name := name
			eg.Go(func() error {
				return compressFile(name)
			})
		}
		return eg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(compressCmd)
}

func compressFile(name string) error {
	reader, err := persistence.NewFileReader(name, cfg.BufferSize)
	if err != nil {
		return err
	}
	defer reader.Close()

	size, err := reader.Width()
	if err != nil {
		return err
	}

	out := name + cfg.Suffix
	if err := checkSpace(filepath.Dir(out), config.RequiredSpace(size)); err != nil {
		return err
	}

	writer, err := persistence.NewFileWriter(out, cfg.BufferSize)
	if err != nil {
		return err
	}

	stats, err := compress.Compress(reader, writer, compress.WithLogger(logger))
	if err != nil {
		_ = writer.Close()
		_ = os.Remove(out)
		return fmt.Errorf("failed to compress %v: %w", name, err)
	}

	logger.Info("compressed file",
		zap.String("input", name),
		zap.String("output", out),
		zap.String("inputSize", bytefmt.ByteSize(size)),
		zap.String("outputSize", bytefmt.ByteSize(stats.CompressedBytes())),
		zap.Float64("ratio", stats.Ratio()),
	)
	return nil
}

func checkSpace(dir string, required uint64) error {
	if cfg.DisableSpaceChecks {
		return nil
	}

	available := shared.AvailableSpace(dir)
	if required > available {
		return fmt.Errorf("not enough disk space. required: %v, available: %v",
			bytefmt.ByteSize(required), bytefmt.ByteSize(available))
	}
	return nil
}
