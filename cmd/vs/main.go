package main

import (
	"github.com/telekom/voice-skill-sdk/internal/cli"
)

func main() {
	cli.Execute()
}
