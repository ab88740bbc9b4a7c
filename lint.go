package readmegen

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// UsageIssue is an HCL syntax error found in a usage code block.
// Line and Column are relative to the code block, starting at 1.
type UsageIssue struct {
	Index   int
	Name    string
	Line    int
	Column  int
	Summary string
	Detail  string
}

func (i UsageIssue) String() string {
	where := fmt.Sprintf("usage[%d]", i.Index)
	if i.Name != "" {
		where += fmt.Sprintf(" %q", i.Name)
	}
	if i.Line > 0 {
		where += fmt.Sprintf(": line %d, column %d", i.Line, i.Column)
	}
	if i.Detail != "" {
		return fmt.Sprintf("%s: %s; %s", where, i.Summary, i.Detail)
	}
	return fmt.Sprintf("%s: %s", where, i.Summary)
}

// LintUsage parses every usage code block as HCL native syntax and reports
// the errors. Entries without code are skipped. Linting never changes what
// Render produces.
func LintUsage(usage []UsageExample) []UsageIssue {
	var issues []UsageIssue
	parser := hclparse.NewParser()

	for i, u := range usage {
		if u.Code == nil {
			continue
		}

		_, diags := parser.ParseHCL([]byte(*u.Code), fmt.Sprintf("usage-%d.tf", i))
		for _, d := range diags {
			if d.Severity != hcl.DiagError {
				continue
			}
			issue := UsageIssue{Index: i, Summary: d.Summary, Detail: d.Detail}
			if u.Name != nil {
				issue.Name = *u.Name
			}
			if d.Subject != nil {
				issue.Line = d.Subject.Start.Line
				issue.Column = d.Subject.Start.Column
			}
			issues = append(issues, issue)
		}
	}

	return issues
}
