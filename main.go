package main

import "github.com/muchiri-dev/dermacare_backend/cmd"

func main() {
	cmd.Execute()
}
