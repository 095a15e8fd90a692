package cmd

// IntelligenceCmd fetches the intelligence feed
type IntelligenceCmd struct{}

// Run executes the intelligence command
func (c *IntelligenceCmd) Run(cmdCtx *Context) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	return client.Intelligence(cmdCtx.Context)
}
