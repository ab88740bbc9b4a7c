package readmegen

import (
	"fmt"
	"strings"
)

// UsageLanguage tags fenced usage code blocks.
const UsageLanguage = "hcl"

// avatarSize is the width and height, in pixels, of contributor avatars.
const avatarSize = 32

// Footer closes every generated README.
const Footer = "---\n\nThis README was generated from [README.yaml](README.yaml) using the Harness documentation generator.\n"

// FormatHeader renders the title heading and description paragraph.
func FormatHeader(name, description *string) string {
	var b strings.Builder
	if name != nil {
		fmt.Fprintf(&b, "# %s\n\n", *name)
	}
	if description != nil {
		fmt.Fprintf(&b, "%s\n\n", *description)
	}
	return b.String()
}

// FormatBadges renders one image link per badge, then a blank line.
func FormatBadges(badges []Badge) string {
	if len(badges) == 0 {
		return ""
	}

	var b strings.Builder
	for _, badge := range badges {
		fmt.Fprintf(&b, "[![%s](%s)](%s)\n", badge.Name, badge.Image, badge.URL)
	}
	b.WriteString("\n")
	return b.String()
}

// FormatUsage renders the Usage section. For each entry the heading,
// description and code block appear only when present; an entry with none
// of them still leaves a blank line.
func FormatUsage(usage []UsageExample) string {
	if len(usage) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## Usage\n\n")

	for _, u := range usage {
		if u.Name == nil && u.Description == nil && u.Code == nil {
			b.WriteString("\n")
			continue
		}
		if u.Name != nil {
			fmt.Fprintf(&b, "### %s\n\n", *u.Name)
		}
		if u.Description != nil {
			fmt.Fprintf(&b, "%s\n\n", *u.Description)
		}
		if u.Code != nil {
			fmt.Fprintf(&b, "```%s\n%s\n```\n\n", UsageLanguage, *u.Code)
		}
	}

	return b.String()
}

// FormatDocs renders the documentation-table section around table.
func FormatDocs(table string) string {
	return "## Terraform Documentation\n\n" + table + "\n\n"
}

// FormatExamples renders the Examples section as a bullet list.
// Every entry must carry name and description; url is optional.
func FormatExamples(examples []Example) (string, error) {
	if len(examples) == 0 {
		return "", nil
	}

	var b strings.Builder
	b.WriteString("## Examples\n\n")

	for i, ex := range examples {
		if err := requireFields("examples", i, field{"name", ex.Name}, field{"description", ex.Description}); err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", *ex.Name, *ex.Description)
		if ex.URL != nil {
			fmt.Fprintf(&b, "  - [View Example](%s)\n", *ex.URL)
		}
	}

	b.WriteString("\n")
	return b.String(), nil
}

// FormatRelated renders the Related Projects section.
// Every entry must carry name, url and description.
func FormatRelated(related []RelatedProject) (string, error) {
	if len(related) == 0 {
		return "", nil
	}

	var b strings.Builder
	b.WriteString("## Related Projects\n\n")

	for i, p := range related {
		if err := requireFields("related", i, field{"name", p.Name}, field{"url", p.URL}, field{"description", p.Description}); err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "- [%s](%s) - %s\n", *p.Name, *p.URL, *p.Description)
	}

	b.WriteString("\n")
	return b.String(), nil
}

// FormatContributors renders the Contributors table, one row per entry.
func FormatContributors(contributors []Contributor) string {
	if len(contributors) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("## Contributors\n\n")
	b.WriteString("| Avatar | Name | Email |\n")
	b.WriteString("|--------|------|-------|\n")

	for _, c := range contributors {
		name := c.Name
		if c.GitHub != "" {
			name = fmt.Sprintf("[%s](https://github.com/%s)", c.Name, c.GitHub)
		}

		avatar := ""
		if c.Avatar != "" {
			avatar = fmt.Sprintf(`<img src="%s" width="%d" height="%d" alt="%s">`, c.Avatar, avatarSize, avatarSize, c.Name)
		}

		fmt.Fprintf(&b, "| %s | %s | %s |\n", avatar, name, c.Email)
	}

	b.WriteString("\n")
	return b.String()
}

// FormatLicense renders the License section.
func FormatLicense(license *string) string {
	if license == nil {
		return ""
	}
	return fmt.Sprintf("## License\n\n%s\n\n", *license)
}

type field struct {
	key   string
	value *string
}

// requireFields returns ErrMissingField naming the first absent key.
func requireFields(section string, index int, fields ...field) error {
	for _, f := range fields {
		if f.value == nil {
			return fmt.Errorf("%w: %s[%d].%s", ErrMissingField, section, index, f.key)
		}
	}
	return nil
}
