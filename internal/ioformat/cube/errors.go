package cube

import "errors"

// ErrTruncated is returned when the file ends before the header, atom
// list or density grid it declares is fully read.
var ErrTruncated = errors.New("cube: file truncated before declared data ended")
