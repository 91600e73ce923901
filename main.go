package main

import (
	"fmt"
	"os"

	"quillbooks/bookpipe/cmd/categorize"
	"quillbooks/bookpipe/cmd/export"
	"quillbooks/bookpipe/cmd/parse"
	"quillbooks/bookpipe/cmd/root"
	"quillbooks/bookpipe/cmd/rules"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(rules.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
