package main

import "github.com/tiwariank/goaleasy/cmd/goaleasy"

func main() {
	goaleasy.Execute()
}
