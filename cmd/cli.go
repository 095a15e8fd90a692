package cmd

// CLI represents the command-line interface
type CLI struct {
	Debug bool `help:"Enable debug logging on stderr"`

	Intelligence IntelligenceCmd `cmd:"" help:"Fetch the intelligence feed"`
	Read         ReadCmd         `cmd:"" help:"Read a single article"`
	Comment      CommentCmd      `cmd:"" help:"Post a comment on an article"`
	Cfg          CfgCmd          `cmd:"" help:"Manage configuration"`
	Version      VersionCmd      `cmd:"" help:"Show version information"`
}
