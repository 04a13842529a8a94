package main

import "golang-netcfg/cmd"

func main() {
	cmd.Execute()
}
