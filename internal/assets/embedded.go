package assets

import (
	"embed"
	"fmt"
)

// DefaultStyle is the stylesheet applied to previews.
const DefaultStyle = "readme"

//go:embed styles/*.css
var styles embed.FS

// LoadStyle returns an embedded stylesheet by name.
// The name should not include the .css extension.
func LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}
