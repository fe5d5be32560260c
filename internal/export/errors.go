package export

import "errors"

// ErrMissingDependency is returned by the document writers when the binary
// was built without the export tag.
var ErrMissingDependency = errors.New("export dependency not available")
