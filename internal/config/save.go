package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// SavePaletteDirs updates the palette_dirs list in the config file.
// This preserves comments and formatting in other sections by using yaml.Node.
func SavePaletteDirs(configPath string, dirs []string) error {
	// Read existing file content
	data, err := os.ReadFile(configPath) // #nosec G304 -- configPath is the user's own config file
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	// Parse into yaml.Node to preserve comments
	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	dirsNode := buildDirsNode(dirs)

	// Update or create the palette_dirs section
	if doc.Kind == 0 {
		// Empty or new file - create document structure
		doc = yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{
				{
					Kind: yaml.MappingNode,
					Content: []*yaml.Node{
						{Kind: yaml.ScalarNode, Value: "palette_dirs"},
						dirsNode,
					},
				},
			},
		}
	} else if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind == yaml.MappingNode {
			// Find and replace palette_dirs key, or append it
			found := false
			for i := 0; i < len(root.Content)-1; i += 2 {
				if root.Content[i].Value == "palette_dirs" {
					root.Content[i+1] = dirsNode
					found = true
					break
				}
			}
			if !found {
				root.Content = append(root.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: "palette_dirs"},
					dirsNode,
				)
			}
		}
	}

	// Marshal back to YAML
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	return writeAtomic(configPath, buf.Bytes())
}

// AddPaletteDir appends a directory to palette_dirs and saves.
// Adding an already-configured directory is a no-op.
func AddPaletteDir(configPath, dir string, existing []string) error {
	if slices.Contains(existing, dir) {
		return nil
	}
	return SavePaletteDirs(configPath, append(slices.Clone(existing), dir))
}

// RemovePaletteDir removes a directory from palette_dirs and saves.
// Returns an error if the directory is not configured.
func RemovePaletteDir(configPath, dir string, existing []string) error {
	idx := slices.Index(existing, dir)
	if idx < 0 {
		return fmt.Errorf("palette directory %q is not configured", dir)
	}
	return SavePaletteDirs(configPath, slices.Delete(slices.Clone(existing), idx, idx+1))
}

// buildDirsNode creates a yaml.Node representing the palette_dirs array.
func buildDirsNode(dirs []string) *yaml.Node {
	node := &yaml.Node{
		Kind:    yaml.SequenceNode,
		Content: make([]*yaml.Node, 0, len(dirs)),
	}
	for _, dir := range dirs {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: dir})
	}
	return node
}

// writeAtomic writes data via a temp file and rename so a crash never
// leaves a half-written config behind.
func writeAtomic(configPath string, data []byte) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".swatch.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, configPath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
