package cmd

import (
	"fmt"
	"os"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bytepress/huff/compress"
	"github.com/bytepress/huff/persistence"
)

var decompressCmd = &cobra.Command{
	Use:   "decompress <file>...",
	Short: "Decompress files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var eg errgroup.Group
		for _, name := range args {
			name := name
			eg.Go(func() error {
				return decompressFile(name)
			})
		}
		return eg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(decompressCmd)
}

func decompressFile(name string) error {
	if !strings.HasSuffix(name, cfg.Suffix) {
		return fmt.Errorf("%v: missing %v suffix", name, cfg.Suffix)
	}
	out := strings.TrimSuffix(name, cfg.Suffix)

	reader, err := persistence.NewFileReader(name, cfg.BufferSize)
	if err != nil {
		return err
	}
	defer reader.Close()

	writer, err := persistence.NewFileWriter(out, cfg.BufferSize)
	if err != nil {
		return err
	}

	stats, err := compress.Decompress(reader, writer, compress.WithLogger(logger))
	if err != nil {
		_ = writer.Close()
		_ = os.Remove(out)
		return fmt.Errorf("failed to decompress %v: %w", name, err)
	}

	logger.Info("decompressed file",
		zap.String("input", name),
		zap.String("output", out),
		zap.String("outputSize", bytefmt.ByteSize(stats.Chunks)),
	)
	return nil
}
