package main

import "hustled_backend/internal/app"

func main() {
	app.Run()
}
