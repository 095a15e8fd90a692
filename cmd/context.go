package cmd

import "context"

// Context carries shared state into command Run methods
type Context struct {
	Context context.Context
}
