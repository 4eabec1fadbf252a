package main

import (
	"exusiai.dev/ssq-predictor/cmd/app"
)

func main() {
	app.Run()
}
