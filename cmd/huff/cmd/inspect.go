package cmd

import (
	"fmt"
	"os"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/bytepress/huff/persistence"
	"github.com/bytepress/huff/shared"
	"github.com/bytepress/huff/validation"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the code table embedded in a compressed file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reader, err := persistence.NewFileReader(args[0], cfg.BufferSize)
		if err != nil {
			return err
		}
		defer reader.Close()

		size, err := reader.Width()
		if err != nil {
			return err
		}

		info, err := validation.Inspect(reader)
		if err != nil {
			return fmt.Errorf("failed to inspect %v: %w", args[0], err)
		}

		fmt.Printf("file: %v, size: %v, symbols: %v, max codeword: %v bits, header: %v bits\n",
			args[0], bytefmt.ByteSize(size), info.Symbols, info.Depth, info.HeaderBits)

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"symbol", "codeword", "bits"})
		table.SetBorder(true)
		for sym := 0; sym < shared.NumSymbols; sym++ {
			if !info.Present[sym] {
				continue
			}
			code := info.Codes[sym]
			table.Append([]string{symbolLabel(sym), code.String(), strconv.Itoa(int(code.Len))})
		}
		table.Render()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func symbolLabel(sym int) string {
	switch {
	case sym == shared.EOF:
		return "EOF"
	case sym >= 0x21 && sym <= 0x7e:
		return fmt.Sprintf("0x%02x %c", sym, rune(sym))
	default:
		return fmt.Sprintf("0x%02x", sym)
	}
}
