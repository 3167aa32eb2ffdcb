package main

import "github.com/giovaniif/shopping-cart/cmd/cli"

var (
	version = "dev"
	commit  = "none"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Execute(cli.NewRootCommand())
}
