package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Quincunx271/meta-dds/internal/json5"
	"github.com/Quincunx271/meta-dds/internal/log"
	"github.com/Quincunx271/meta-dds/internal/manifest"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	infoOutput     string
	createProject  string
	createOut      string
	createIfExists string
)

func init() {
	pkgInfoCmd.Flags().StringVarP(&infoOutput, "output", "o", "json", "Output format (json or yaml)")
	pkgCreateCmd.Flags().StringVarP(&createProject, "project", "p", ".", "The project directory containing "+manifest.FileName)
	pkgCreateCmd.Flags().StringVar(&createOut, "out", "", "Output file (default <project>/package.json)")
	pkgCreateCmd.Flags().StringVar(&createIfExists, "if-exists", "fail", "What to do when the output exists (fail, skip, replace)")

	pkgCmd.AddCommand(pkgValidateCmd)
	pkgCmd.AddCommand(pkgInfoCmd)
	pkgCmd.AddCommand(pkgCreateCmd)
	rootCmd.AddCommand(pkgCmd)
}

var pkgCmd = &cobra.Command{
	Use:   "pkg",
	Short: "Work with package manifests",
}

var pkgValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a meta_package.json5 manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: OK (%d depends, %d test_depends, %d meta depends, %d meta test_depends)\n",
			args[0], len(m.Depends), len(m.TestDepends), len(m.MetaDepends), len(m.MetaTestDepends))
		return nil
	},
}

var pkgInfoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print the parsed manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.LoadFile(args[0])
		if err != nil {
			return err
		}

		switch infoOutput {
		case "json":
			out, err := json.MarshalIndent(m, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling manifest: %w", err)
			}
			fmt.Println(string(out))
		case "yaml":
			out, err := yaml.Marshal(m)
			if err != nil {
				return fmt.Errorf("marshaling manifest: %w", err)
			}
			fmt.Print(string(out))
		default:
			return fmt.Errorf("unknown output format %q (expected json or yaml)", infoOutput)
		}
		return nil
	},
}

var pkgCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Emit the dds-consumable package.json for a project",
	Long: `Validate the project's meta_package.json5, strip the meta_dds object, and
write the remaining document as package.json for plain dds to consume.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		manifestPath := filepath.Join(createProject, manifest.FileName)
		outPath := createOut
		if outPath == "" {
			outPath = filepath.Join(createProject, "package.json")
		}

		data, err := os.ReadFile(manifestPath)
		if err != nil {
			return fmt.Errorf("reading manifest %s: %w", manifestPath, err)
		}
		node, err := json5.Parse(data)
		if err != nil {
			return fmt.Errorf("%s: invalid package manifest JSON5 document: %w", manifestPath, err)
		}
		if _, err := manifest.Load(node, manifestPath); err != nil {
			return err
		}

		stripped := manifest.StripMeta(node)
		out, err := json.MarshalIndent(stripped, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling package document: %w", err)
		}
		out = append(out, '\n')

		result, err := manifest.CheckDDSPackage(out)
		if err != nil {
			return fmt.Errorf("checking package document: %w", err)
		}
		if !result.Valid {
			for _, issue := range result.Issues {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", issue.Path, issue.Message)
			}
			return fmt.Errorf("%s does not produce a valid dds package manifest", manifestPath)
		}

		if _, err := os.Stat(outPath); err == nil {
			switch createIfExists {
			case "fail":
				return fmt.Errorf("output file %s already exists (use --if-exists to override)", outPath)
			case "skip":
				log.Info("output exists, skipping", log.Fields{"path": outPath})
				fmt.Printf("Skipped %s (already exists)\n", outPath)
				return nil
			case "replace":
				log.Debug("replacing existing output", log.Fields{"path": outPath})
			default:
				return fmt.Errorf("unknown --if-exists value %q (expected fail, skip, or replace)", createIfExists)
			}
		}

		if err := os.WriteFile(outPath, out, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}
		fmt.Printf("Wrote %s\n", outPath)
		return nil
	},
}
