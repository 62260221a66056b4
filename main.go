package main

import "github.com/graexlabs/sentinel-cli/cmd"

var execCmd = cmd.Execute

func main() {
	execCmd()
}
