package readmegen

import (
	"fmt"

	"github.com/alnah/go-readmegen/internal/fileutil"
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// WriteFile replaces path with content. The content goes to a temporary file
// in the same directory that is then renamed into place, so an interrupted
// run leaves either the previous file or the complete new one.
func WriteFile(path, content string) error {
	if err := fileutil.WriteFileAtomic(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}
	return nil
}
