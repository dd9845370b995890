package main

import "github.com/reservely/reservation-service/internal/cli"

func main() {
	cli.Execute()
}
