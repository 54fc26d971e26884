package assets

import (
	"embed"
	"fmt"
)

//go:embed data/*.yaml
var projectAssets embed.FS

// Read returns an embedded data file.
func Read(name string) ([]byte, error) {
	b, err := projectAssets.ReadFile("data/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset %q: %w", name, err)
	}
	return b, nil
}
