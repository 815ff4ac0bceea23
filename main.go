package main

import "lpg-delivery-api/cli"

func main() {
	cli.Execute()
}
