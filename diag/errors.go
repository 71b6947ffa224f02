package diag

import "errors"

// ErrMalformedXML is wrapped into the error Read/ReadString return when the
// source document is not well-formed XML.
var ErrMalformedXML = errors.New("diag: malformed xml document")

// ErrConfigParse is wrapped into the error a configuration load returns
// when the weight file is not valid JSON, or a weight value is not a
// number. Corresponds to code E_CONFIG_PARSE.
var ErrConfigParse = errors.New("diag: malformed configuration")
