package server

import "errors"

// errNoHTTPListener is returned by NewServer when there is no address to
// listen on or no handler to serve.
var errNoHTTPListener = errors.New("results server: no HTTP address or handler configured")
