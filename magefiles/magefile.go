//go:build mage

package main

import (
	"fmt"
	"os/exec"

	"github.com/joho/godotenv"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const envFile = "configs/.env"

// Mocks regenerates gomock doubles for the record store
func Mocks() error {
	if _, err := exec.LookPath("mockgen"); err != nil {
		fmt.Println(">> mockgen not found; install with:")
		fmt.Println("   go install go.uber.org/mock/mockgen@latest")
		return err
	}
	fmt.Println(">> go generate ./internal/taxengine/...")
	return sh.Run("go", "generate", "./internal/taxengine/...")
}

// Swagger regenerates api/swagger from the handler annotations
func Swagger() error {
	if _, err := exec.LookPath("swag"); err != nil {
		fmt.Println(">> swag not found; install with:")
		fmt.Println("   go install github.com/swaggo/swag/cmd/swag@latest")
		return err
	}
	fmt.Println(">> swag init")
	return sh.Run("swag", "init", "-g", "cmd/api/main.go", "-o", "api/swagger", "--outputTypes", "go")
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println(">> go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Test runs all unit tests. Repository tests need cgo for sqlite.
func Test() error {
	fmt.Println(">> Running tests...")
	return sh.RunWith(map[string]string{"CGO_ENABLED": "1"}, "go", "test", "./...")
}

// Build compiles the API server to ./bin/taxledger-api.
func Build() error {
	mg.Deps(Tidy)
	fmt.Println(">> Building server binary...")
	return sh.Run("go", "build", "-o", "bin/taxledger-api", "./cmd/api")
}

// Run builds then executes the binary with configs/.env applied.
func Run() error {
	mg.Deps(Build)
	env, err := godotenv.Read(envFile)
	if err != nil {
		fmt.Printf(">> %s not loaded (%v); using process environment\n", envFile, err)
		env = map[string]string{}
	}
	fmt.Println(">> Starting server...")
	return sh.RunWith(env, "./bin/taxledger-api")
}
