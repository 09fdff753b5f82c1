package main

import (
	"github.com/raidlog/droptracker/cmd/app"
)

func main() {
	app.Run()
}
