package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spacemeshos/sha256-simd"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bytepress/huff/compress"
	"github.com/bytepress/huff/persistence"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <file>...",
	Short: "Round-trip files through a temporary stream and compare digests",
	Long: `Each file is compressed into a temporary stream, decompressed again, and
the sha256 digests of the original and the round-trip output are compared.
Nothing next to the input file is modified.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var eg errgroup.Group
		for _, name := range args {
			name := name
			eg.Go(func() error {
				return verifyFile(name)
			})
		}
		return eg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func verifyFile(name string) error {
	want, err := digestFile(name)
	if err != nil {
		return err
	}

	reader, err := persistence.NewFileReader(name, cfg.BufferSize)
	if err != nil {
		return err
	}
	defer reader.Close()

	tmp, err := os.CreateTemp("", "huff-verify-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	// Compress closes tmp on success.
	if _, err := compress.Compress(reader, tmp, compress.WithLogger(logger)); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to compress %v: %w", name, err)
	}

	compressed, err := persistence.NewFileReader(tmp.Name(), cfg.BufferSize)
	if err != nil {
		return err
	}
	defer compressed.Close()

	hasher := sha256.New()
	if _, err := compress.Decompress(compressed, hasher, compress.WithLogger(logger)); err != nil {
		return fmt.Errorf("failed to decompress round-trip of %v: %w", name, err)
	}

	if got := hasher.Sum(nil); !bytes.Equal(got, want) {
		return fmt.Errorf("%v: round-trip digest mismatch: %x != %x", name, got, want)
	}

	logger.Info("verified file", zap.String("input", name), zap.String("sha256", fmt.Sprintf("%x", want)))
	return nil
}

func digestFile(name string) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return nil, err
	}
	return hasher.Sum(nil), nil
}
