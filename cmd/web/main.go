package main

import "stylehomes_backend/internal/app"

func main() {
	app.Run()
}
