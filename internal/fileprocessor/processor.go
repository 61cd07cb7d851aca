// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/mcs51godisasm/internal/detector"
	"github.com/retroenv/mcs51godisasm/internal/disasm"
	"github.com/retroenv/mcs51godisasm/internal/loader"
	"github.com/retroenv/mcs51godisasm/internal/options"
	"github.com/retroenv/mcs51godisasm/internal/program"
	"github.com/retroenv/mcs51godisasm/internal/writer"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program,
	disasmOptions options.Disassembler) error {

	format := detector.New(logger).Detect(opts)

	code, err := loader.New().Load(opts, format)
	if err != nil {
		return fmt.Errorf("loading image: %w", err)
	}

	logger.Debug("Image loaded",
		log.String("file", opts.Input),
		log.Int("size", len(code)))

	output, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := output.(io.Closer); ok {
			_ = closer.Close()
		}
	}()

	dis, err := disasm.New(logger, code, disasmOptions, newFileWriter)
	if err != nil {
		return fmt.Errorf("creating disassembler: %w", err)
	}

	if _, err := dis.Process(ctx, output); err != nil {
		return fmt.Errorf("disassembling: %w", err)
	}

	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files found for batch pattern %s", opts.Batch)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// GenerateOutputFilename generates output filename for a given input file
func GenerateOutputFilename(inputFile string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + ".asm"
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("mcs51godisasm",
		log.String("version", buildinfo.Version(version, commit, date)))
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

func newFileWriter(app *program.Program, opts options.Disassembler,
	mainWriter io.Writer) writer.AssemblerWriter {

	return writer.New(app, opts, mainWriter)
}
