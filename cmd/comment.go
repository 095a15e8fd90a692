package cmd

// CommentCmd posts a comment on an article
type CommentCmd struct {
	Slug    string `required:"" help:"Article slug"`
	Author  string `required:"" help:"Comment author"`
	Content string `required:"" help:"Comment text"`
}

// Run executes the comment command
func (c *CommentCmd) Run(cmdCtx *Context) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	return client.PostComment(cmdCtx.Context, c.Slug, c.Author, c.Content)
}
