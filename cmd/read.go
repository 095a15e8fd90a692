package cmd

// ReadCmd fetches a single article
type ReadCmd struct {
	Slug string `required:"" help:"Article slug"`
}

// Run executes the read command
func (c *ReadCmd) Run(cmdCtx *Context) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	return client.ReadArticle(cmdCtx.Context, c.Slug)
}
