package main

import (
	"github.com/reusee/bf/sessions"
	"github.com/reusee/bf/sources"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Sessions sessions.Module
	Sources  sources.Module
}
