package main

import "github.com/llehouerou/pcsradio/cmd"

func main() {
	cmd.Execute()
}
