package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/docmorph/internal/logging"
	"github.com/yaklabco/docmorph/internal/ui/pretty"
	"github.com/yaklabco/docmorph/pkg/config"
	"github.com/yaklabco/docmorph/pkg/convert"
	"github.com/yaklabco/docmorph/pkg/document"
)

// imageExtensions are the resource files preloaded into the parser's
// image map, keyed by path relative to the input file's directory.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

func newConvertCommand(configPath *string) *cobra.Command {
	var inputPath string
	var outputPath string
	var fromFlag string
	var toFlag string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a document file to another format",
		Long: `Convert reads the input file, parses it into the document model, and
writes it regenerated in the output format. Formats default to the file
extensions and can be overridden with --from and --to. Images referenced
by the input are resolved against files in the input's directory; images
produced by the generator are written next to the output file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd, *configPath, inputPath, outputPath, fromFlag, toFlag)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "input file (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (required)")
	cmd.Flags().StringVar(&fromFlag, "from", "", "input format (default: input extension)")
	cmd.Flags().StringVar(&toFlag, "to", "", "output format (default: output extension)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runConvert(cmd *cobra.Command, configPath, inputPath, outputPath, fromFlag, toFlag string) error {
	logger := logging.Default()

	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	from, err := resolveFormat(fromFlag, inputPath)
	if err != nil {
		return err
	}
	to, err := resolveFormat(toFlag, outputPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	images, err := loadImages(filepath.Dir(inputPath))
	if err != nil {
		return fmt.Errorf("load images: %w", err)
	}
	logger.Debug("input loaded",
		logging.FieldInput, inputPath,
		logging.FieldFrom, from,
		logging.FieldImages, len(images),
	)

	transformer, err := convert.For(from)
	if err != nil {
		return err
	}
	doc, err := transformer.Parse(data, images)
	if err != nil {
		return fmt.Errorf("parse %s: %w", from, err)
	}
	cfg.Apply(doc)

	generator, err := convert.For(to)
	if err != nil {
		return err
	}
	out, outImages, err := generator.Generate(doc)
	if err != nil {
		return fmt.Errorf("generate %s: %w", to, err)
	}

	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := writeImages(filepath.Dir(outputPath), outImages); err != nil {
		return err
	}

	styles := pretty.NewStyles(pretty.ColorEnabled())
	fmt.Fprint(cmd.OutOrStdout(), styles.FormatConversion(pretty.Conversion{
		Input:  inputPath,
		Output: outputPath,
		From:   string(from),
		To:     string(to),
		Bytes:  len(out),
		Images: len(outImages),
	}))
	return nil
}

// resolveFormat picks the explicit flag when given, otherwise the file
// extension.
func resolveFormat(flag, path string) (convert.Format, error) {
	if flag != "" {
		f := convert.Format(strings.ToLower(flag))
		if _, err := convert.For(f); err != nil {
			return "", err
		}
		return f, nil
	}
	return convert.FromExtension(path)
}

// loadImages collects image files under dir keyed by their path relative
// to dir, matching how documents reference them.
func loadImages(dir string) (document.ImageMap, error) {
	images := document.ImageMap{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if !imageExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		images[filepath.ToSlash(rel)] = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

func writeImages(dir string, images document.ImageMap) error {
	for name, data := range images {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return fmt.Errorf("write image %s: %w", name, err)
		}
	}
	return nil
}
