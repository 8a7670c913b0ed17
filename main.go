package main

import (
	"github.com/qastore/app/cmd"
)

// @title QA Store API
// @version 1.0
// @description Storefront demo API with user credentials, password reset and a configurable fault-injection simulator.

// @host  localhost:8000
// @BasePath /api/v1

func main() {
	cmd.StartApp()
}
