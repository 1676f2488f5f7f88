package domain

import "errors"

var (
	ErrJobNotFound         = errors.New("build job not found")
	ErrNoTemplateAvailable = errors.New("no templates available")
	ErrBuildInProgress     = errors.New("a build is already in progress for this project")
	ErrBuildRateLimited    = errors.New("build requests are rate limited, try again shortly")
	ErrFallbackSynthesis   = errors.New("could not write placeholder build artifacts")
)
