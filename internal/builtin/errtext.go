package builtin

import (
	"errors"
	"io/fs"
	"os"
)

// underlyingErr strips the path already embedded in a *fs.PathError (or
// *os.LinkError) so callers can compose spec.md §4.D/§7's
// "<cmd>: <context>: <system error message>" shape without repeating the
// path twice (os.PathError.Error() already includes op and path).
func underlyingErr(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Err.Error()
	}
	return err.Error()
}
