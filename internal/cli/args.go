package cli

import "strconv"

// parseID parses a record id argument.
func parseID[T ~int64](arg, kind string) (T, error) {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, userErrorf("invalid %s id %q", kind, arg)
	}
	return T(n), nil
}
