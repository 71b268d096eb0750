package cli

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// keyPattern matches translation keys in calls to the catalog accessors.
var keyPattern = regexp.MustCompile(`(?:GetText|GetAllTexts|NGetText)\(\s*"([A-Za-z0-9_.-]+)"`)

// newTranslateCmd creates the translate command. It extracts message keys
// from the project's Go sources into a YAML catalog template, keeping the
// texts of keys already present in the output file.
func newTranslateCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "translate [dir]",
		Short: "Extract message keys into a translation template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			keys, err := extractKeys(dir)
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				cmd.Println("No message keys found")
				return nil
			}

			existing, err := loadCatalog(output)
			if err != nil {
				return err
			}

			catalog := map[string][]string{}
			for _, key := range keys {
				texts := existing[key]
				if len(texts) == 0 {
					texts = []string{""}
				}
				catalog[key] = texts
			}

			if err := writeCatalog(output, keys, catalog); err != nil {
				return err
			}
			okLabel.Fprintf(cmd.OutOrStdout(), "Extracted %d message keys to %s\n", len(keys), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", filepath.Join("locale", "template.yaml"), "Template file to write")
	return cmd
}

// extractKeys scans the Go sources below dir and returns the translation
// keys they reference, sorted and unique.
func extractKeys(dir string) ([]string, error) {
	seen := map[string]bool{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range keyPattern.FindAllSubmatch(src, -1) {
			seen[string(match[1])] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

func loadCatalog(path string) (map[string][]string, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string][]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	catalog := map[string][]string{}
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// writeCatalog writes the catalog with keys in sorted order.
func writeCatalog(path string, keys []string, catalog map[string][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var sb strings.Builder
	for _, key := range keys {
		entry, err := yaml.Marshal(map[string][]string{key: catalog[key]})
		if err != nil {
			return err
		}
		sb.Write(entry)
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
