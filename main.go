package main

import "github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
