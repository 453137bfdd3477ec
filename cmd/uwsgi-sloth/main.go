package main

import (
	"github.com/Bryant-Yang/uwsgi-sloth/internal/commands"
)

func main() {
	commands.Execute()
}
