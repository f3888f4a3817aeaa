package parser

import "errors"

var (
	errNoCommand      = errors.New("No command specified")
	errMultipleRedir  = errors.New("Multiple redirection")
	errExpectFilename = errors.New("Expect filename after redirection")
	errGlob           = errors.New("Glob encountered an error")
)
