package readmegen

// Descriptor is a parsed README.yaml. Every top-level field is optional and
// an absent (nil or empty) field omits its section from the output.
//
// Scalars that may be present-but-empty are pointers: `license: ""` still
// renders a License section, while a missing key does not.
type Descriptor struct {
	Name         *string          `yaml:"name"`
	Description  *string          `yaml:"description"`
	Badges       []Badge          `yaml:"badges"`
	Usage        []UsageExample   `yaml:"usage"`
	Examples     []Example        `yaml:"examples"`
	Related      []RelatedProject `yaml:"related"`
	Contributors []Contributor    `yaml:"contributors"`
	License      *string          `yaml:"license"`
}

// Badge is a shield image linking somewhere. Missing fields render as "".
type Badge struct {
	Name  string `yaml:"name"`
	Image string `yaml:"image"`
	URL   string `yaml:"url"`
}

// UsageExample is one entry of the Usage section. Each part is emitted only
// when its key is present.
type UsageExample struct {
	Name        *string `yaml:"name"`
	Description *string `yaml:"description"`
	Code        *string `yaml:"code"`
}

// Example points at an example configuration.
// Name and Description are required; URL is optional.
type Example struct {
	Name        *string `yaml:"name"`
	Description *string `yaml:"description"`
	URL         *string `yaml:"url"`
}

// RelatedProject links to a sibling module.
// Name, URL and Description are all required.
type RelatedProject struct {
	Name        *string `yaml:"name"`
	URL         *string `yaml:"url"`
	Description *string `yaml:"description"`
}

// Contributor is one row of the Contributors table. Missing fields render
// as empty cells; GitHub and Avatar switch on only when non-empty.
type Contributor struct {
	Avatar string `yaml:"avatar"`
	Name   string `yaml:"name"`
	GitHub string `yaml:"github"`
	Email  string `yaml:"email"`
}

// String returns a pointer to s, for building descriptors in code.
func String(s string) *string {
	return &s
}
